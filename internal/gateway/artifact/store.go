package artifact

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const requestTimeout = 5 * time.Second

// Store - шлюз к внешнему хранилищу артефактов за базовым URL.
// Ядро хранит только ссылки, бинарное содержимое живет снаружи.
type Store struct {
	baseURL string
	client  *http.Client
}

func New(baseURL string) *Store {
	return &Store{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: requestTimeout},
	}
}

func (s *Store) URLFor(ref string) string {
	return s.baseURL + "/" + strings.TrimLeft(ref, "/")
}

func (s *Store) Exists(ctx context.Context, ref string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, s.URLFor(ref), nil)
	if err != nil {
		return false, fmt.Errorf("gateway artifact, build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("gateway artifact, head %q: %w", ref, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("gateway artifact, head %q: unexpected status %d", ref, resp.StatusCode)
	}
}

// Delete удаляет артефакт. Отсутствующий артефакт не считается ошибкой:
// вызывающему важно итоговое состояние, а не кто удалил.
func (s *Store) Delete(ctx context.Context, ref string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.URLFor(ref), nil)
	if err != nil {
		return fmt.Errorf("gateway artifact, build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("gateway artifact, delete %q: %w", ref, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		return nil
	default:
		return fmt.Errorf("gateway artifact, delete %q: unexpected status %d", ref, resp.StatusCode)
	}
}
