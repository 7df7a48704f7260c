package transport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	occupancy "vantraResto/internal/modules/occupancy/domain"
	"vantraResto/internal/modules/realtime/domain"
	"vantraResto/internal/modules/realtime/infrastructure"
	resport "vantraResto/internal/modules/reservations/application/port"
	resusecase "vantraResto/internal/modules/reservations/application/usecase"
	reservations "vantraResto/internal/modules/reservations/domain"
	schedule "vantraResto/internal/modules/schedule/domain"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// moveCommand is the payload of the "move" websocket action, the kanban
// drag-and-drop arriving over the socket.
type moveCommand struct {
	ID           int64  `json:"id"`
	TargetStatus string `json:"targetStatus"`
}

// NewBoardWebsocketHandler exposes /ws/board. Each connection becomes a hub
// client subscribed to the feed topics, primed with the current snapshots so
// it renders without waiting for the first mutation.
func NewBoardWebsocketHandler(
	hub *infrastructure.Hub,
	store resport.ReservationStore,
	transitionUC *resusecase.TransitionUseCase,
	occupancyCfg occupancy.Config,
	sendBuffer int,
) echo.HandlerFunc {
	occupancyCfg.Shift = nil

	return func(c echo.Context) error {
		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("ws upgrade failed", slog.Any("error", err))
			return err
		}

		commands := infrastructure.NewCommandProcessor(hub)
		commands.Register("move", func(ctx context.Context, client *infrastructure.Client, cmd infrastructure.Command) {
			handleMove(ctx, client, cmd, transitionUC)
		})

		client := infrastructure.NewClient(hub, conn, sendBuffer, commands)
		hub.AttachClient(client, domain.FeedTopics())

		go client.WritePump()
		go client.ReadPump()

		primeClient(c.Request().Context(), client, store, occupancyCfg)
		return nil
	}
}

func handleMove(ctx context.Context, client *infrastructure.Client, cmd infrastructure.Command, transitionUC *resusecase.TransitionUseCase) {
	var payload moveCommand
	if len(cmd.Payload) > 0 {
		if err := json.Unmarshal(cmd.Payload, &payload); err != nil {
			client.SendDomainMessage(domain.BuildErrorMessage("malformed move payload", nil, time.Now()))
			return
		}
	}
	target := reservations.NormalizeStatus(payload.TargetStatus)
	if _, err := transitionUC.Move(ctx, payload.ID, target); err != nil {
		slog.Warn("ws move rejected", slog.String("clientId", client.ID()), slog.Int64("id", payload.ID), slog.Any("error", err))
		client.SendDomainMessage(domain.BuildErrorMessage(err.Error(), domain.Metadata{"action": "move"}, time.Now()))
	}
	// Success needs no direct reply: the store event fans the new state out
	// to every surface, this client included.
}

// primeClient sends the connected marker plus the current derived snapshots
// to a freshly attached surface.
func primeClient(ctx context.Context, client *infrastructure.Client, store resport.ReservationStore, occupancyCfg occupancy.Config) {
	now := time.Now()
	client.SendDomainMessage(&domain.Message{
		Topic:     domain.TopicSystemConnected,
		Entity:    domain.SystemEntity,
		Action:    domain.ActionConnected,
		Metadata:  domain.Metadata{"clientId": client.ID()},
		Timestamp: now.UTC(),
	})

	snapshot, err := store.List(ctx)
	if err != nil {
		slog.Warn("ws prime list failed", slog.String("clientId", client.ID()), slog.Any("error", err))
		return
	}
	client.SendDomainMessage(domain.BuildBoardMessage(schedule.ByStatus(snapshot), now))
	if buckets, err := schedule.ByTime(snapshot); err == nil {
		client.SendDomainMessage(domain.BuildScheduleMessage(buckets, now))
	} else {
		slog.Error("ws prime schedule failed", slog.String("clientId", client.ID()), slog.Any("error", err))
	}
	client.SendDomainMessage(domain.BuildOccupancyMessage(occupancy.Compute(snapshot, occupancyCfg), now))
}
