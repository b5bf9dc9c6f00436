package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/faizfusion/saharenau/config"
	"github.com/faizfusion/saharenau/model"
	"github.com/faizfusion/saharenau/musicxml"
	"github.com/faizfusion/saharenau/render"
	"github.com/faizfusion/saharenau/score"
)

// current render, guarded by renderMu. The serve command keeps exactly
// one rendition in memory and swaps it wholesale on re-render.
var (
	renderMu     sync.RWMutex
	serveCfg     config.Config
	currentScore model.Score
	renderID     string
	midiBytes    []byte
	xmlBytes     []byte
)

// re-renders arrive from UI sliders etc., coalesce the bursts
var renderDebounce = debounce.New(250 * time.Millisecond)

func init() {
	serveCmd.Flags().StringVarP(&generateConfigPath, "config", "c", "", "YAML composition config")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves a live render preview over HTTP",
	Long:  `Serves a live render preview over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// Rebuild regenerates the score with the given seed and swaps the
// cached artifacts.
func Rebuild(seed int64) {
	renderMu.Lock()
	defer renderMu.Unlock()

	serveCfg.Seed = seed
	rng := rand.New(rand.NewSource(serveCfg.Seed))
	s, err := score.Build(serveCfg, rng)
	if err != nil {
		fmt.Printf("Could not rebuild score: %v\n", err)
		return
	}

	var midiBuf bytes.Buffer
	if err := render.WriteSMF(s, &midiBuf); err != nil {
		fmt.Printf("Could not render midi: %v\n", err)
		return
	}
	var xmlBuf bytes.Buffer
	if err := musicxml.Export(s, &xmlBuf); err != nil {
		fmt.Printf("Could not render musicxml: %v\n", err)
		return
	}

	currentScore = s
	renderID = uuid.New().String()
	midiBytes = midiBuf.Bytes()
	xmlBytes = xmlBuf.Bytes()
	fmt.Printf("Rendered %v (seed %v)\n", renderID, seed)
}

// InitServe primes the in-memory render. Split out so handler tests can
// call it without a listener.
func InitServe(cfg config.Config) {
	serveCfg = cfg
	Rebuild(cfg.Seed)
}

func summarize() model.ScoreSummary {
	s := currentScore
	summary := model.ScoreSummary{
		RenderID: renderID,
		Title:    s.Title,
		Composer: s.Composer,
		Seed:     serveCfg.Seed,
		Tempos:   s.Tempos,
	}
	for _, voice := range s.Voices {
		vs := model.VoiceSummary{Name: voice.Name, EventCount: len(voice.Events)}
		if len(voice.Events) > 0 {
			vs.Start = voice.Events[0].Offset
			for _, pe := range voice.Events {
				if stop := pe.Offset + pe.Event.Duration; stop > vs.End {
					vs.End = stop
				}
			}
		}
		summary.Voices = append(summary.Voices, vs)
	}
	return summary
}

func HandleScore(w http.ResponseWriter, r *http.Request) {
	renderMu.RLock()
	defer renderMu.RUnlock()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summarize())
}

func HandleMidi(w http.ResponseWriter, r *http.Request) {
	renderMu.RLock()
	defer renderMu.RUnlock()
	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("X-Render-Id", renderID)
	w.Write(midiBytes)
}

func HandleMusicXML(w http.ResponseWriter, r *http.Request) {
	renderMu.RLock()
	defer renderMu.RUnlock()
	w.Header().Set("Content-Type", "application/vnd.recordare.musicxml+xml")
	w.Header().Set("X-Render-Id", renderID)
	w.Write(xmlBytes)
}

func HandleRender(w http.ResponseWriter, r *http.Request) {
	seed := seedFromRequest(r)

	renderDebounce(func() {
		Rebuild(seed)
	})
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]int64{"seed": seed})
}

func seedFromRequest(r *http.Request) int64 {
	if q := r.URL.Query().Get("seed"); q != "" {
		if seed, err := strconv.ParseInt(q, 10, 64); err == nil {
			return seed
		}
	}

	reqBody, err := io.ReadAll(r.Body)
	if err == nil && len(reqBody) > 0 {
		var input model.RenderRequestBody
		if err := json.Unmarshal(reqBody, &input); err == nil && input.Seed != 0 {
			return input.Seed
		}
	}

	// no seed given: roll a fresh one
	return time.Now().UnixNano()
}

func serve() {
	InitServe(loadConfig())

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/score", HandleScore).Methods("GET")
	router.HandleFunc("/render.mid", HandleMidi).Methods("GET")
	router.HandleFunc("/render.xml", HandleMusicXML).Methods("GET")
	router.HandleFunc("/render", HandleRender).Methods("POST")

	handler := cors.Default().Handler(router)
	fmt.Println("Listening on :8080")
	log.Fatal(http.ListenAndServe(":8080", handler))
}
