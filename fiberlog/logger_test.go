package fiberlog

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLatencyPerRequest(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	app := fiber.New()
	app.Use(New(Config{
		Logger: logger,
		Tags:   []string{TagPath, TagLatency},
	}))
	app.Get("/slow", func(c *fiber.Ctx) error {
		time.Sleep(100 * time.Millisecond)
		return c.SendString("ok")
	})
	app.Get("/fast", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// быстрый запрос завершается пока медленный еще обрабатывается,
	// latency медленного не должен от этого пострадать
	var wg sync.WaitGroup
	var slowErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, slowErr = app.Test(httptest.NewRequest(fiber.MethodGet, "/slow", nil), 2000)
	}()
	time.Sleep(20 * time.Millisecond)
	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/fast", nil), 2000)
	require.NoError(t, err)
	wg.Wait()
	require.NoError(t, slowErr)

	foundSlow := false
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry[TagPath] != "/slow" {
			continue
		}
		foundSlow = true
		latency, err := time.ParseDuration(entry[TagLatency].(string))
		require.NoError(t, err)
		require.GreaterOrEqual(t, latency, 100*time.Millisecond)
	}
	require.True(t, foundSlow)
}
