package controller

import (
	"net/http"
	"time"

	"foodshare-api/internal/service"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 25 * time.Second
)

type liveRoutesHandler struct {
	listingService service.Listing
	requestService service.Request
	upgrader       websocket.Upgrader
}

func newLiveRoutesHandler(outer *echo.Group, services *service.Services) *liveRoutesHandler {
	h := &liveRoutesHandler{
		listingService: services.Listing,
		requestService: services.Request,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	live := outer.Group("/live")
	live.GET("/listings", h.Listings)
	live.GET("/listings/my", h.MyListings)
	live.GET("/requests/my", h.MyRequests)
	live.GET("/requests/inbox", h.Inbox)

	return h
}

// /live/listings
func (h *liveRoutesHandler) Listings(c echo.Context) error {
	viewer, filter, err := feedInput(c)
	if err != nil {
		return respondQuery(c, err)
	}

	watch, err := h.listingService.WatchAvailableListings(c.Request().Context(), viewer, filter)
	if err != nil {
		return respondError(c, err)
	}

	return stream(c, h.upgrader, watch)
}

// /live/listings/my
func (h *liveRoutesHandler) MyListings(c echo.Context) error {
	watch, err := h.listingService.WatchDonorDashboard(c.Request().Context(), viewerOf(c))
	if err != nil {
		return respondError(c, err)
	}

	return stream(c, h.upgrader, watch)
}

// /live/requests/my
func (h *liveRoutesHandler) MyRequests(c echo.Context) error {
	watch, err := h.requestService.WatchMyRequests(c.Request().Context(), viewerOf(c))
	if err != nil {
		return respondError(c, err)
	}

	return stream(c, h.upgrader, watch)
}

// /live/requests/inbox?tab=active|history
func (h *liveRoutesHandler) Inbox(c echo.Context) error {
	watch, err := h.requestService.WatchInbox(c.Request().Context(), viewerOf(c), c.QueryParam("tab"))
	if err != nil {
		return respondError(c, err)
	}

	return stream(c, h.upgrader, watch)
}

// stream upgrades the connection and writes every diff of the watch as a json text frame until
// either side goes away. The watch is closed on return.
func stream[T any](c echo.Context, upgrader websocket.Upgrader, watch *service.Watch[T]) error {
	defer watch.Close()

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// the upgrader already answered the handshake
		log.WithError(err).Debug("websocket upgrade failed")
		return nil
	}
	defer conn.Close()

	gone := make(chan struct{})
	go func() {
		defer close(gone)

		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-gone:
			return nil
		case diff, ok := <-watch.Events():
			if !ok {
				msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "view closed")
				_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
				return nil
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(diff); err != nil {
				return nil
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return nil
			}
		}
	}
}
