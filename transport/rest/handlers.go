package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rocketscienceinc/kalah-backend/internal/apperror"
	"github.com/rocketscienceinc/kalah-backend/internal/entity"
	"github.com/rocketscienceinc/kalah-backend/internal/kalah"
	"github.com/rocketscienceinc/kalah-backend/internal/usecase"
)

type GameHandler interface {
	CreateGame(w http.ResponseWriter, r *http.Request)
	GetGame(w http.ResponseWriter, r *http.Request)
	MakeMove(w http.ResponseWriter, r *http.Request)
}

type gameHandler struct {
	logger  *slog.Logger
	baseURL string
	games   usecase.GameUseCase
}

type createGameResponse struct {
	ID  string `json:"id"`
	URI string `json:"uri"`
}

type gameStatusResponse struct {
	ID     string            `json:"id"`
	URL    string            `json:"url"`
	Status map[string]string `json:"status"`
	Turn   string            `json:"turn,omitempty"`
	State  string            `json:"state"`
	Result string            `json:"result,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewGameHandler - baseURL prefixes game URIs; when empty it is taken from the request.
func NewGameHandler(logger *slog.Logger, baseURL string, games usecase.GameUseCase) GameHandler {
	return &gameHandler{
		logger:  logger.With("component", "rest"),
		baseURL: strings.TrimSuffix(baseURL, "/"),
		games:   games,
	}
}

func (that *gameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.CreateGame(r.Context(), that.requestBaseURL(r))
	if err != nil {
		that.writeError(w, err)
		return
	}

	w.Header().Set("Location", game.URI)
	that.writeJSON(w, http.StatusCreated, createGameResponse{ID: game.ID, URI: game.URI})
}

func (that *gameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := parseGameID(r)
	if err != nil {
		that.writeError(w, err)
		return
	}

	game, err := that.games.GetGame(r.Context(), gameID)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, toGameStatusResponse(game))
}

// MakeMove - pit ids on the wire are 1-based.
func (that *gameHandler) MakeMove(w http.ResponseWriter, r *http.Request) {
	gameID, err := parseGameID(r)
	if err != nil {
		that.writeError(w, err)
		return
	}

	pitID, err := strconv.Atoi(chi.URLParam(r, "pitId"))
	if err != nil {
		that.writeError(w, apperror.ErrInvalidPitID)
		return
	}

	game, _, err := that.games.MakeMove(r.Context(), gameID, pitID-1)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, toGameStatusResponse(game))
}

func (that *gameHandler) requestBaseURL(r *http.Request) string {
	if that.baseURL != "" {
		return that.baseURL
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	return scheme + "://" + r.Host
}

func (that *gameHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *gameHandler) writeError(w http.ResponseWriter, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
		that.writeJSON(w, status, errorResponse{Error: http.StatusText(status)})
		return
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidGameID),
		errors.Is(err, apperror.ErrInvalidPitID),
		errors.Is(err, kalah.ErrInvalidPit),
		errors.Is(err, kalah.ErrCannotPlayFromKalah),
		errors.Is(err, kalah.ErrNotPlayersTurn),
		errors.Is(err, kalah.ErrEmptyPit):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, kalah.ErrGameAlreadyFinished),
		errors.Is(err, apperror.ErrConcurrentUpdate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func parseGameID(r *http.Request) (string, error) {
	gameID := chi.URLParam(r, "gameId")
	if err := uuid.Validate(gameID); err != nil {
		return "", apperror.ErrInvalidGameID
	}

	return gameID, nil
}

func toGameStatusResponse(game *entity.Game) gameStatusResponse {
	response := gameStatusResponse{
		ID:     game.ID,
		URL:    game.URI,
		Status: game.PitStatus(),
	}

	if game.Board == nil {
		return response
	}

	response.State = game.Board.Status
	if game.Board.IsRunning() {
		response.Turn = game.Board.Turn
	}

	if result, ok := game.Board.Result(); ok {
		response.Result = result
	}

	return response
}
