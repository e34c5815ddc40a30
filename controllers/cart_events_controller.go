package controllers

import (
	"net/http"

	"cart-gateway/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type CartEventsController struct {
	Notifier *services.Notifier
}

// CartEvents streams a "cart_updated" message to the client every time a
// cart mutation goes through. Fire and forget: a client that connects after
// an emission missed it and should fetch the cart on mount.
func (ctrl *CartEventsController) CartEvents(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	events := make(chan struct{}, 8)
	unsubscribe := ctrl.Notifier.Subscribe(func() {
		select {
		case events <- struct{}{}:
		default:
			// Slow consumer, drop the signal. It carries no payload and
			// the client refetches the whole cart anyway.
		}
	})
	defer unsubscribe()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-events:
			if err := conn.WriteMessage(websocket.TextMessage, []byte("cart_updated")); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
