package middleware

import (
	"cart-gateway/utils"

	"github.com/gin-gonic/gin"
)

const guestSessionCookie = "guest_session"

// GuestSessionMiddleware makes sure every request carries a guest session
// id. The id keys the guest cart; an SPA that cannot use cookies may send
// it in the X-Guest-Session header instead.
func GuestSessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := c.GetHeader("X-Guest-Session")
		if guestID == "" {
			if cookie, err := c.Cookie(guestSessionCookie); err == nil {
				guestID = cookie
			}
		}

		if guestID == "" {
			guestID = utils.GenerateGuestSessionID()
			c.SetCookie(guestSessionCookie, guestID, 3600*24*30, "/", "", false, true)
		}

		c.Set("guest_id", guestID)
		c.Next()
	}
}
