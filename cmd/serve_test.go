package cmd

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func get(t *testing.T, handler http.HandlerFunc, url string) (*http.Response, []byte) {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	handler(w, req)
	resp := w.Result()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, body
}

func TestLilyEndpoint(t *testing.T) {
	assert := assert.New(t)
	resp, body := get(t, HandleLily, "/piece.ly?seed=42")

	assert.Equal(200, resp.StatusCode)
	assert.Contains(string(body), "seed=42")
	assert.NotEmpty(resp.Header.Get("X-Request-Id"))
}

func TestLilyEndpointIsDeterministicPerSeed(t *testing.T) {
	assert := assert.New(t)
	_, a := get(t, HandleLily, "/piece.ly?seed=42&preset=1.1")
	_, b := get(t, HandleLily, "/piece.ly?seed=42&preset=1.1")
	assert.Equal(a, b)
}

func TestMidiEndpoint(t *testing.T) {
	assert := assert.New(t)
	resp, body := get(t, HandleMidi, "/piece.mid?seed=42&repeat=2")

	assert.Equal(200, resp.StatusCode)
	assert.Equal("audio/midi", resp.Header.Get("Content-Type"))
	assert.Equal("MThd", string(body[:4]))
}

func TestVolumeIsRangeChecked(t *testing.T) {
	assert := assert.New(t)
	resp, _ := get(t, HandleMidi, "/piece.mid?seed=1&volume=127")
	assert.Equal(200, resp.StatusCode)
	resp, _ = get(t, HandleMidi, "/piece.mid?seed=1&volume=300")
	assert.Equal(400, resp.StatusCode)
}

func TestBadParamsAreRejected(t *testing.T) {
	assert := assert.New(t)
	for _, url := range []string{
		"/piece.ly?stutter=abc",
		"/piece.ly?stutter=2",
		"/piece.ly?preset=nope",
		"/piece.ly?harmony=bogus",
		"/piece.ly?repeat=0",
		"/piece.ly?repeat=2.9",
		"/piece.ly?seed=abc",
		"/piece.ly?volume=300",
		"/piece.ly?volume=-1",
		"/piece.ly?volume=1.5",
		"/piece.ly?tempo=90.5",
	} {
		resp, _ := get(t, HandleLily, url)
		assert.Equal(400, resp.StatusCode, url)
	}
}
