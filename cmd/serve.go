package cmd

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/meander-gen/meander/config"
	"github.com/meander-gen/meander/gen"
	"github.com/meander-gen/meander/lily"
	"github.com/meander-gen/meander/midifile"
	"github.com/meander-gen/meander/model"
	"github.com/meander-gen/meander/render"
	"github.com/meander-gen/meander/rng"
)

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves generated pieces over HTTP",
	Long: `Serves generated pieces over HTTP. GET /piece.ly and /piece.mid take
the generate flags as query parameters.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// queryPiece builds a piece from request query parameters. Each request owns
// its stream, so concurrent requests cannot disturb each other.
func queryPiece(r *http.Request) (*model.Piece, error) {
	q := r.URL.Query()
	preset := q.Get("preset")
	if preset == "" {
		preset = "1"
	}
	cfg, err := config.Preset(preset, nil)
	if err != nil {
		return nil, err
	}
	if v := q.Get("harmony"); v != "" {
		cfg.Harmony = v
	}

	var badParam error
	num := func(key string, set func(float64)) {
		v := q.Get(key)
		if v == "" {
			return
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			badParam = fmt.Errorf("bad %v: %q", key, v)
			return
		}
		set(f)
	}
	ival := func(key string, set func(int)) {
		v := q.Get(key)
		if v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			badParam = fmt.Errorf("bad %v: %q", key, v)
			return
		}
		set(n)
	}
	ival("tempo", func(n int) { cfg.Tempo = n })
	num("min-len", func(f float64) { cfg.MinLen = f })
	num("max-len", func(f float64) { cfg.MaxLen = f })
	ival("harmony-base", func(n int) { cfg.HarmonyBase = n })
	ival("melody-base", func(n int) { cfg.MelodyBase = n })
	num("steady", func(f float64) { cfg.Steady = f })
	num("gravity", func(f float64) { cfg.Gravity = f })
	num("drag", func(f float64) { cfg.Drag = f })
	num("nudge", func(f float64) { cfg.Nudge = f })
	num("stutter", func(f float64) { cfg.Stutter = f })
	ival("volume", func(n int) {
		// range-check before the uint8 conversion can wrap
		if n < 0 || n > 127 {
			badParam = fmt.Errorf("volume out of range: %d", n)
			return
		}
		cfg.Volume = uint8(n)
	})

	repeat := 1
	ival("repeat", func(n int) { repeat = n })
	if badParam != nil {
		return nil, badParam
	}

	seed := rng.RandomSeed()
	if v := q.Get("seed"); v != "" {
		seed, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad seed: %q", v)
		}
	}
	if repeat < 1 {
		return nil, fmt.Errorf("repeat must be at least 1, got %d", repeat)
	}
	return gen.Generate(cfg, repeat, seed)
}

func HandleLily(w http.ResponseWriter, r *http.Request) {
	piece, err := queryPiece(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	e := lily.NewEmitter(piece)
	render.Piece(piece, e)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Request-Id", uuid.New().String())
	w.Write(e.Bytes())
}

func HandleMidi(w http.ResponseWriter, r *http.Request) {
	piece, err := queryPiece(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	e := midifile.NewEmitter(piece)
	render.Piece(piece, e)
	data, err := e.Bytes()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("X-Request-Id", uuid.New().String())
	w.Write(data)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/piece.ly", HandleLily).Methods("GET")
	router.HandleFunc("/piece.mid", HandleMidi).Methods("GET")
	handler := cors.Default().Handler(router)
	fmt.Printf("listening on %v\n", serveAddr)
	log.Fatal(http.ListenAndServe(serveAddr, handler))
}
