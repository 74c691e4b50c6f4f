package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func render(f func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	f(c)
	return w
}

func TestJSONSuccess(t *testing.T) {
	w := render(func(c *gin.Context) { JSONSuccess(c, http.StatusCreated, map[string]string{"id": "r1"}) })
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"id":"r1"}}`, w.Body.String())
}

func TestJSONList_EmptyKeepsCount(t *testing.T) {
	w := render(func(c *gin.Context) { JSONList(c, []string{}, 0) })
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[],"count":0}`, w.Body.String())
}

func TestJSONError(t *testing.T) {
	var c *gin.Context
	w := render(func(ctx *gin.Context) {
		c = ctx
		JSONError(ctx, http.StatusNotFound, "Room not found.")
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, c.IsAborted())
	assert.JSONEq(t, `{"success":false,"error":"Room not found."}`, w.Body.String())
}
