package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// APIResponse is the standard API response wrapper.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *APIMeta    `json:"meta,omitempty"`
}

// APIError represents an API error.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIMeta contains response metadata.
type APIMeta struct {
	Total     int    `json:"total,omitempty"`
	Timestamp string `json:"timestamp"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Endpoint not found")
		return
	}

	respond(w, http.StatusOK, map[string]interface{}{
		"name": "CedarBible API",
		"endpoints": []string{
			"GET /api/status",
			"GET /api/books",
			"GET /api/books/:book/chapters",
			"GET /api/books/:book/verses",
			"GET /api/verse?book=&chapter=&verse=",
			"GET /api/search?q=&limit=",
			"GET /api/daily",
			"WS /ws/search",
		},
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}
	respond(w, http.StatusOK, s.mgr.Snapshot())
}

func (s *Server) handleBooks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}
	infos := s.mgr.BooksInfo()
	respondWithTotal(w, http.StatusOK, infos, len(infos))
}

// handleBookByName serves /api/books/{book}/chapters and
// /api/books/{book}/verses.
func (s *Server) handleBookByName(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/books/")
	parts := strings.SplitN(rest, "/", 2)
	book := parts[0]
	if book == "" {
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Book name required")
		return
	}

	sub := ""
	if len(parts) == 2 {
		sub = parts[1]
	}

	switch sub {
	case "chapters":
		chapters := s.mgr.ChaptersForBook(book)
		if chapters == nil {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Unknown book: "+book)
			return
		}
		respondWithTotal(w, http.StatusOK, chapters, len(chapters))
	case "verses":
		verses := s.mgr.VersesForBook(book)
		if chapter := r.URL.Query().Get("chapter"); chapter != "" {
			n, err := strconv.Atoi(chapter)
			if err != nil {
				respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid chapter number")
				return
			}
			verses = s.mgr.VersesForChapter(book, n)
		}
		if verses == nil {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Unknown book: "+book)
			return
		}
		respondWithTotal(w, http.StatusOK, verses, len(verses))
	default:
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Unknown resource: "+sub)
	}
}

func (s *Server) handleVerse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	q := r.URL.Query()
	book := q.Get("book")
	chapter, err1 := strconv.Atoi(q.Get("chapter"))
	verse, err2 := strconv.Atoi(q.Get("verse"))
	if book == "" || err1 != nil || err2 != nil {
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", "book, chapter, and verse are required")
		return
	}

	v, ok := s.mgr.FindVerse(book, chapter, verse)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Verse not found")
		return
	}
	respond(w, http.StatusOK, v)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	query := r.URL.Query().Get("q")
	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid limit")
			return
		}
		limit = n
	}

	// A superseded or disconnected request still reports whatever partial
	// results were collected before cancellation.
	results, _ := s.mgr.SearchVerses(r.Context(), query, limit)
	respondWithTotal(w, http.StatusOK, results, len(results))
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	v, err := s.daily.VerseForDate(r.Context(), time.Now())
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY", err.Error())
		return
	}
	respond(w, http.StatusOK, v)
}

func respond(w http.ResponseWriter, status int, data interface{}) {
	writeResponse(w, status, APIResponse{
		Success: true,
		Data:    data,
		Meta: &APIMeta{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func respondWithTotal(w http.ResponseWriter, status int, data interface{}, total int) {
	writeResponse(w, status, APIResponse{
		Success: true,
		Data:    data,
		Meta: &APIMeta{
			Total:     total,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	writeResponse(w, status, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
		Meta: &APIMeta{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func writeResponse(w http.ResponseWriter, status int, response APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}
