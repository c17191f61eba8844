// Command server exposes the unmunch engine as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/expand?word=<word>[&flags=A,B]
//	POST /api/analyze          body: {"word":"..."}
//	GET  /api/unmunch
//
// Configuration comes from flags, overridable by UNMUNCH_AFF,
// UNMUNCH_DIC and UNMUNCH_ADDR in the environment or a .env file.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	unmunch "github.com/openlexica/unmunch"
)

// ---- JSON response types ------------------------------------------------

type expandResponse struct {
	Word  string   `json:"word"`
	Flags []string `json:"flags,omitempty"`
	Forms []string `json:"forms"`
}

type analyzeRequest struct {
	Word string `json:"word"`
}

type analyzeResponse struct {
	Word      string   `json:"word"`
	BaseWords []string `json:"base_words"`
	Forms     []string `json:"forms"`
}

type unmunchResponse struct {
	Count int      `json:"count"`
	Words []string `json:"words"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleExpand(u *unmunch.Unmunch) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}

		var flags []string
		if raw := r.URL.Query().Get("flags"); raw != "" {
			flags = strings.Split(raw, ",")
		}

		var forms []string
		var err error
		switch {
		case len(flags) > 0:
			forms, err = u.Expander().ExpandWithFlags(word, flags)
		case u.Dictionary() != nil:
			forms, err = u.ExpandEntry(word)
		default:
			forms, err = u.ExpandWord(word)
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, expandResponse{Word: word, Flags: flags, Forms: forms})
	}
}

func handleAnalyze(u *unmunch.Unmunch) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		if u.Dictionary() == nil {
			writeError(w, http.StatusServiceUnavailable, "no dictionary loaded")
			return
		}
		var body analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Word == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'word' field")
			return
		}

		bases, err := u.FindBaseWords(body.Word)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		forms, err := u.FindBaseAndExpand(body.Word)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, analyzeResponse{
			Word:      body.Word,
			BaseWords: bases,
			Forms:     forms,
		})
	}
}

func handleUnmunch(u *unmunch.Unmunch) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		if u.Dictionary() == nil {
			writeError(w, http.StatusServiceUnavailable, "no dictionary loaded")
			return
		}
		words, err := u.Unmunch()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, unmunchResponse{Count: len(words), Words: words})
	}
}

// ---- main ---------------------------------------------------------------

// envDefault returns the environment value for key, or def when unset.
func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	affixPath := flag.String("aff", envDefault("UNMUNCH_AFF", ""), "path to the affix (.aff) file")
	dictPath := flag.String("dic", envDefault("UNMUNCH_DIC", ""), "path to the dictionary (.dic) file (optional)")
	addr := flag.String("addr", envDefault("UNMUNCH_ADDR", ":8080"), "listen address")
	flag.Parse()

	if *affixPath == "" {
		log.Fatal("an affix file is required (-aff or UNMUNCH_AFF)")
	}

	u := unmunch.New()
	log.Printf("loading affix file %s …", *affixPath)
	if err := u.LoadAffixFile(*affixPath); err != nil {
		log.Fatalf("failed to load affix file: %v", err)
	}
	if *dictPath != "" {
		log.Printf("loading dictionary %s …", *dictPath)
		if err := u.LoadDictionary(*dictPath); err != nil {
			log.Fatalf("failed to load dictionary: %v", err)
		}
		log.Printf("dictionary loaded: %d entries", u.Dictionary().Len())
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/expand", handleExpand(u))
	mux.HandleFunc("/api/analyze", handleAnalyze(u))
	mux.HandleFunc("/api/unmunch", handleUnmunch(u))

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
