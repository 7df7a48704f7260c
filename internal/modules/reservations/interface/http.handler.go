package transport

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	occupancy "vantraResto/internal/modules/occupancy/domain"
	"vantraResto/internal/modules/reservations/application/port"
	"vantraResto/internal/modules/reservations/application/usecase"
	"vantraResto/internal/modules/reservations/domain"
	schedule "vantraResto/internal/modules/schedule/domain"
	"vantraResto/internal/shared/httputil"
)

// HTTPHandler exposes the REST surface the dashboard consumes: reservation
// CRUD, the button and drag transition paths, and the derived views.
type HTTPHandler struct {
	store        port.ReservationStore
	intakeUC     *usecase.IntakeUseCase
	transitionUC *usecase.TransitionUseCase
	occupancyCfg occupancy.Config
	shifts       map[string]occupancy.Shift
	mapper       *httputil.ErrorMapper
}

// NewHTTPHandler wires the handler and its error translation table.
func NewHTTPHandler(
	store port.ReservationStore,
	intakeUC *usecase.IntakeUseCase,
	transitionUC *usecase.TransitionUseCase,
	occupancyCfg occupancy.Config,
	shifts map[string]occupancy.Shift,
) *HTTPHandler {
	mapper := httputil.NewErrorMapper().
		WithMapping(domain.ErrNotFound, http.StatusNotFound, "reservation no longer exists").
		WithMapping(domain.ErrValidation, http.StatusUnprocessableEntity, "invalid reservation data").
		WithMapping(domain.ErrInvalidTransition, http.StatusConflict, "transition not allowed").
		WithMapping(domain.ErrTerminalStatus, http.StatusConflict, "reservation already finished").
		WithMapping(schedule.ErrMalformedTime, http.StatusInternalServerError, "stored reservation has a malformed time")
	return &HTTPHandler{
		store:        store,
		intakeUC:     intakeUC,
		transitionUC: transitionUC,
		occupancyCfg: occupancyCfg,
		shifts:       shifts,
		mapper:       mapper,
	}
}

// Register mounts all routes on the echo instance.
func (h *HTTPHandler) Register(e *echo.Echo) {
	e.GET("/healthz", h.health)

	api := e.Group("/api")
	api.GET("/reservations", h.list)
	api.POST("/reservations", h.create)
	api.PATCH("/reservations/:id", h.edit)
	api.DELETE("/reservations/:id", h.remove)
	api.POST("/reservations/:id/confirm", h.confirm)
	api.POST("/reservations/:id/arrive", h.arrive)
	api.POST("/reservations/:id/release", h.release)
	api.POST("/reservations/:id/move", h.move)
	api.GET("/schedule", h.schedule)
	api.GET("/board", h.board)
	api.GET("/occupancy", h.occupancy)
}

func (h *HTTPHandler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) list(c echo.Context) error {
	snapshot, err := h.store.List(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	items := schedule.FilterDate(snapshot, strings.TrimSpace(c.QueryParam("date")))
	return c.JSON(http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

func (h *HTTPHandler) create(c echo.Context) error {
	var raw map[string]any
	if err := c.Bind(&raw); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	record, err := h.intakeUC.Intake(c.Request().Context(), domain.NormalizeDraft(raw))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, record)
}

func (h *HTTPHandler) edit(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}
	var raw map[string]any
	if err := c.Bind(&raw); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	record, err := h.intakeUC.Edit(c.Request().Context(), id, domain.NormalizePatch(raw))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, record)
}

func (h *HTTPHandler) remove(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}
	if err := h.intakeUC.Remove(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *HTTPHandler) confirm(c echo.Context) error {
	return h.transition(c, h.transitionUC.Confirm)
}

func (h *HTTPHandler) arrive(c echo.Context) error {
	return h.transition(c, h.transitionUC.Arrive)
}

func (h *HTTPHandler) release(c echo.Context) error {
	return h.transition(c, h.transitionUC.Release)
}

func (h *HTTPHandler) transition(c echo.Context, step func(ctx context.Context, id int64) (domain.Reservation, error)) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}
	record, err := step(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, record)
}

func (h *HTTPHandler) move(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}
	var body struct {
		TargetStatus string `json:"targetStatus"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	record, err := h.transitionUC.Move(c.Request().Context(), id, domain.NormalizeStatus(body.TargetStatus))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, record)
}

func (h *HTTPHandler) schedule(c echo.Context) error {
	snapshot, err := h.store.List(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	items := schedule.FilterDate(snapshot, strings.TrimSpace(c.QueryParam("date")))
	buckets, err := schedule.ByTime(items)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"buckets": buckets})
}

func (h *HTTPHandler) board(c echo.Context) error {
	snapshot, err := h.store.List(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	items := schedule.FilterDate(snapshot, strings.TrimSpace(c.QueryParam("date")))
	return c.JSON(http.StatusOK, map[string]any{"lanes": schedule.ByStatus(items)})
}

func (h *HTTPHandler) occupancy(c echo.Context) error {
	snapshot, err := h.store.List(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	cfg := h.occupancyCfg
	if name := strings.TrimSpace(c.QueryParam("shift")); name != "" {
		shift, ok := h.shifts[name]
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown shift "+name)
		}
		cfg.Shift = &shift
	}
	return c.JSON(http.StatusOK, occupancy.Compute(snapshot, cfg))
}

func (h *HTTPHandler) httpError(err error) error {
	info := h.mapper.Map(err)
	return echo.NewHTTPError(info.Status, info.Message)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid reservation id")
	}
	return id, nil
}
