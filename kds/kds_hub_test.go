package kds

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sreekln/HotelOrderingSystem-sub000/models"
	"github.com/sreekln/HotelOrderingSystem-sub000/utils"
)

func TestBacklogSentOnConnect(t *testing.T) {
	utils.InitLogger()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.PartOrder{}, &models.PartOrderItem{}))
	utils.InitDB(db)

	db.Create(&models.PartOrder{
		SessionID:   1,
		ServerID:    1,
		TableNumber: 4,
		Status:      models.PartOrderSentToKitchen,
		Items: []models.PartOrderItem{
			{MenuItemID: 1, Name: "Burger", Quantity: 2, UnitPrice: 10.00, TaxRate: 20},
		},
	})
	// Drafts are not kitchen work and must stay out of the backlog.
	db.Create(&models.PartOrder{SessionID: 1, ServerID: 1, TableNumber: 4, Status: models.PartOrderDraft})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, Upgrade(w, r, "kitchen"))
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	assert.NoError(t, err)
	defer conn.Close()

	assert.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	assert.NoError(t, err)

	var msg struct {
		Event string             `json:"event"`
		Data  []models.PartOrder `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(payload, &msg))
	assert.Equal(t, EventKitchenBacklog, msg.Event)
	assert.Len(t, msg.Data, 1)
	assert.Equal(t, models.PartOrderSentToKitchen, msg.Data[0].Status)
	assert.Equal(t, "Burger", msg.Data[0].Items[0].Name)
}
