package judge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJudgeSuccess(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			SideA []string `json:"sideA"`
			SideB []string `json:"sideB"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, []string{"p1", "p2"}, req.SideA)
		require.Equal(t, []string{"q1"}, req.SideB)

		json.NewEncoder(w).Encode(map[string]any{
			"scoreA":   7.0,
			"scoreB":   5.0,
			"winner":   "Side A",
			"feedback": "A was more convincing",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	verdict, err := client.Judge(context.Background(), []string{"p1", "p2"}, []string{"q1"})
	require.NoError(t, err)
	require.Equal(t, 7.0, verdict.ScoreA)
	require.Equal(t, 5.0, verdict.ScoreB)
	require.Equal(t, "Side A", verdict.Winner)
	require.Equal(t, "A was more convincing", verdict.Feedback)
}

func TestJudgeNonSuccessStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	_, err := client.Judge(context.Background(), []string{"a"}, []string{"b"})
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestJudgeMissingFields(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
	}{
		{"no winner", `{"scoreA":7,"scoreB":5,"feedback":"ok"}`},
		{"no scores", `{"winner":"Side A","feedback":"ok"}`},
		{"no feedback", `{"scoreA":7,"scoreB":5,"winner":"Side A"}`},
		{"empty object", `{}`},
		{"not json", `winner: Side A`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, time.Second)

			_, err := client.Judge(context.Background(), []string{"a"}, []string{"b"})
			require.ErrorIs(t, err, ErrBadVerdict)
		})
	}
}

func TestJudgeTimeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 10*time.Millisecond)

	_, err := client.Judge(context.Background(), []string{"a"}, []string{"b"})
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestJudgeUnreachable(t *testing.T) {
	t.Parallel()

	client := NewClient("http://127.0.0.1:1", time.Second)

	_, err := client.Judge(context.Background(), []string{"a"}, []string{"b"})
	require.ErrorIs(t, err, ErrUnavailable)
}
