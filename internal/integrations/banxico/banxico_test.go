package banxico

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dan9191/econosfera/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seriesXML = `<?xml version="1.0" encoding="UTF-8"?>
<series>
	<serie idSerie="SF43936" titulo="Valores gubernamentales, CETES a 28 días, tasa de rendimiento">
		<Obs>
			<fecha>09/10/2026</fecha>
			<dato>7.31</dato>
		</Obs>
		<Obs>
			<fecha>16/10/2026</fecha>
			<dato>7.25</dato>
		</Obs>
	</serie>
</series>`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewClient(&config.Config{BanxicoURL: srv.URL + "/", BanxicoToken: "token", CetesSeries: "SF43936"}, log)
}

func TestGetCetesRate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/series/SF43936/datos/oportuno", r.URL.Path)
		assert.Equal(t, "token", r.Header.Get("Bmx-Token"))
		assert.Equal(t, "application/xml", r.Header.Get("Accept"))
		w.Write([]byte(seriesXML))
	})

	snap, err := c.GetCetesRate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SF43936", snap.Series)
	assert.Equal(t, 7.25, snap.Value)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), snap.Date)
}

func TestGetCetesRateErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, ""},
		{"malformed xml", http.StatusOK, "<series><serie"},
		{"other series", http.StatusOK, `<series><serie idSerie="SF60653"><Obs><fecha>16/10/2026</fecha><dato>1</dato></Obs></serie></series>`},
		{"no data", http.StatusOK, `<series><serie idSerie="SF43936"><Obs><fecha>16/10/2026</fecha><dato>N/E</dato></Obs></serie></series>`},
		{"bad date", http.StatusOK, `<series><serie idSerie="SF43936"><Obs><fecha>2026-10-16</fecha><dato>7.25</dato></Obs></serie></series>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			_, err := c.GetCetesRate(context.Background())
			assert.Error(t, err)
		})
	}
}
