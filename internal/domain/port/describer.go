package port

import "face-diff-bot/internal/domain/entity"

// ChangeDescriber интерфейс генератора текстовых описаний изменений
type ChangeDescriber interface {
	// Describe превращает набор изменений в описания и общие выводы
	Describe(diffs entity.DifferenceSet) []string
}
