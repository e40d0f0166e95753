// Package report форматирует результат сравнения для людей (текст) и для машин (YAML).
package report

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"face-diff-bot/internal/domain/entity"
)

const separator = "============================================================"

// Text возвращает отчёт: таблица измерений, значимые изменения и нумерованные описания.
func Text(result *entity.ComparisonResult) string {
	var b strings.Builder

	b.WriteString(separator + "\n")
	b.WriteString("Face analysis: measurements\n")
	b.WriteString(separator + "\n")
	for _, d := range result.Differences {
		fmt.Fprintf(&b, "%-26s: %+7.2f px (%+6.1f%%) [%s]\n", d.Feature, d.AbsoluteChange, d.PercentChange, status(d))
	}
	b.WriteString(separator + "\n")

	if result.HasSignificantChanges() {
		names := make([]string, 0, len(result.Significant))
		for _, f := range result.Significant {
			names = append(names, f.String())
		}
		fmt.Fprintf(&b, "Significant changes: %s\n", strings.Join(names, ", "))
	} else {
		b.WriteString("No major changes were detected\n")
	}

	b.WriteString("\n" + separator + "\n")
	b.WriteString("Face analysis: description\n")
	b.WriteString(separator + "\n")
	for i, desc := range result.Descriptions {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, desc)
	}
	b.WriteString(separator + "\n")

	return b.String()
}

// Summary короткий вариант для чата: только описания и список значимых изменений.
func Summary(result *entity.ComparisonResult) string {
	var b strings.Builder
	for _, desc := range result.Descriptions {
		b.WriteString("• " + desc + "\n")
	}
	if result.HasSignificantChanges() {
		keys := make([]string, 0, len(result.Significant))
		for _, f := range result.Significant {
			keys = append(keys, f.String())
		}
		fmt.Fprintf(&b, "\nSignificant: %s", strings.Join(keys, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

func status(d entity.Difference) string {
	switch {
	case d.AbsoluteChange > 0:
		return "enlarged"
	case d.AbsoluteChange < 0:
		return "reduced"
	default:
		return "unchanged"
	}
}

// Document YAML-представление результата сравнения
type Document struct {
	ID           string       `yaml:"id,omitempty"`
	BaselineID   string       `yaml:"baseline_id,omitempty"`
	ComparedAt   time.Time    `yaml:"compared_at,omitempty"`
	Differences  []DiffRecord `yaml:"differences"`
	Significant  []string     `yaml:"significant_changes"`
	Descriptions []string     `yaml:"descriptions"`
}

// DiffRecord одна строка таблицы изменений
type DiffRecord struct {
	Feature        string  `yaml:"feature"`
	Past           float64 `yaml:"past_px"`
	Current        float64 `yaml:"current_px"`
	AbsoluteChange float64 `yaml:"pixel_change"`
	PercentChange  float64 `yaml:"change_percent"`
}

// NewDocument собирает YAML-документ из результата
func NewDocument(result *entity.ComparisonResult) Document {
	doc := Document{
		ID:           result.ID,
		BaselineID:   result.BaselineID,
		ComparedAt:   result.ComparedAt,
		Differences:  make([]DiffRecord, 0, len(result.Differences)),
		Significant:  make([]string, 0, len(result.Significant)),
		Descriptions: result.Descriptions,
	}
	for _, d := range result.Differences {
		doc.Differences = append(doc.Differences, DiffRecord{
			Feature:        d.Feature.Key(),
			Past:           d.Past,
			Current:        d.Current,
			AbsoluteChange: d.AbsoluteChange,
			PercentChange:  d.PercentChange,
		})
	}
	for _, f := range result.Significant {
		doc.Significant = append(doc.Significant, f.Key())
	}
	return doc
}

// YAML сериализует результат сравнения
func YAML(result *entity.ComparisonResult) ([]byte, error) {
	out, err := yaml.Marshal(NewDocument(result))
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return out, nil
}
