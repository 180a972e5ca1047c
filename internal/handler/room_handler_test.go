package handler

import (
	"net/http"
	"testing"

	"amassah-lodge-go/internal/catalog"
	"amassah-lodge-go/internal/model"
	"amassah-lodge-go/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newRoomRouter() *gin.Engine {
	h := NewRoomHandler(service.NewRoomService(catalog.Rooms()))
	r := gin.New()
	r.GET("/api/v1/rooms", h.List)
	r.GET("/api/v1/rooms/compare", h.Compare)
	r.GET("/api/v1/rooms/:id", h.Get)
	return r
}

func TestRoomHandler_List(t *testing.T) {
	r := newRoomRouter()

	t.Run("should filter by price range and room type", func(t *testing.T) {
		req := require.New(t)
		w, env := doRequest(t, r, http.MethodGet, "/api/v1/rooms?priceRange=under300&roomType=luxury", nil)
		req.Equal(http.StatusOK, w.Code)

		var rooms []model.Room
		decodeData(t, env, &rooms)
		req.NotEmpty(rooms)
		for _, room := range rooms {
			req.Equal("Luxury", room.Type)
			req.Less(room.Price, 300)
		}
	})

	t.Run("should reject an unknown price range", func(t *testing.T) {
		w, env := doRequest(t, r, http.MethodGet, "/api/v1/rooms?priceRange=cheap", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, http.StatusBadRequest, env.Code)
	})
}

func TestRoomHandler_Get(t *testing.T) {
	r := newRoomRouter()

	t.Run("should return the room", func(t *testing.T) {
		req := require.New(t)
		w, env := doRequest(t, r, http.MethodGet, "/api/v1/rooms/2", nil)
		req.Equal(http.StatusOK, w.Code)
		var room model.Room
		decodeData(t, env, &room)
		req.Equal(2, room.ID)
	})

	t.Run("should return 404 for unknown or malformed ids", func(t *testing.T) {
		w, _ := doRequest(t, r, http.MethodGet, "/api/v1/rooms/99", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		w, _ = doRequest(t, r, http.MethodGet, "/api/v1/rooms/abc", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRoomHandler_Compare(t *testing.T) {
	r := newRoomRouter()

	t.Run("should compare the selected rooms in order", func(t *testing.T) {
		req := require.New(t)
		w, env := doRequest(t, r, http.MethodGet, "/api/v1/rooms/compare?ids=3,1", nil)
		req.Equal(http.StatusOK, w.Code)

		var cmp model.RoomComparison
		decodeData(t, env, &cmp)
		req.Len(cmp.Rooms, 2)
		req.Equal(3, cmp.Rooms[0].ID)
		req.Len(cmp.Matrix, 2)
		req.Len(cmp.Matrix[0], len(cmp.Features))
	})

	t.Run("should reject more than three rooms", func(t *testing.T) {
		w, _ := doRequest(t, r, http.MethodGet, "/api/v1/rooms/compare?ids=1,2,3,4", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should reject an empty or malformed selection", func(t *testing.T) {
		w, _ := doRequest(t, r, http.MethodGet, "/api/v1/rooms/compare", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		w, _ = doRequest(t, r, http.MethodGet, "/api/v1/rooms/compare?ids=1,x", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
