package boards

import (
	"fmt"

	"github.com/pinforge/pinforge/internal/domain"
)

// Mapper converts boards.yaml entries to domain boards
type Mapper struct{}

// NewMapper creates a new board mapper
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapBoards converts BoardsConfig to domain.Board slice.
// Entries without an id or name are skipped.
func (m *Mapper) MapBoards(config BoardsConfig) ([]*domain.Board, error) {
	boards := make([]*domain.Board, 0, len(config.Boards))

	for _, entry := range config.Boards {
		if entry.ID == "" || entry.Name == "" {
			continue
		}
		boards = append(boards, &domain.Board{
			ID:   entry.ID,
			Name: entry.Name,
		})
	}

	if len(boards) == 0 {
		return nil, fmt.Errorf("no valid boards found in config")
	}

	return boards, nil
}
