// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"github.com/danielhkuo/stock-count/count"
	"github.com/danielhkuo/stock-count/models"
)

func toProduct(p count.ProductRef) models.Product {
	return models.Product{
		ID:          int64(p.ID),
		Code:        p.Code,
		Description: p.Description,
		Category:    p.Category,
		Stock:       p.Recorded,
	}
}

func toCountLine(ev count.LineEvaluation) models.CountLine {
	return models.CountLine{
		ProductID:        int64(ev.Product.ID),
		Code:             ev.Product.Code,
		Description:      ev.Product.Description,
		Category:         ev.Product.Category,
		RecordedQuantity: ev.Product.Recorded,
		PhysicalQuantity: ev.Line.Physical.Ptr(),
		Variance:         ev.Variance.Ptr(),
		Status:           ev.Variance.Class().String(),
		Observation:      ev.Line.Observation,
		HasObservation:   ev.Line.HasObservation(),
	}
}

func toCountLines(evs []count.LineEvaluation) []models.CountLine {
	lines := make([]models.CountLine, len(evs))
	for i, ev := range evs {
		lines[i] = toCountLine(ev)
	}
	return lines
}

func toSessionSummary(s count.Summary) models.SessionSummary {
	return models.SessionSummary{
		Total:       s.Total,
		Counted:     s.Counted,
		Pending:     s.Pending,
		Exact:       s.Exact,
		Short:       s.Short,
		Over:        s.Over,
		NetVariance: s.NetVariance,
	}
}

func notePtr(note string) *string {
	if note == "" {
		return nil
	}
	return &note
}

func toSummary(s count.RecordSummary) models.ReconciliationSummary {
	return models.ReconciliationSummary{
		ID:             s.ID,
		CountedAt:      s.Timestamp,
		HasDifferences: s.HasDifferences,
		Note:           notePtr(s.Note),
	}
}

func toReconciliation(rec count.Record) models.Reconciliation {
	details := make([]models.ReconciliationDetail, len(rec.Details))
	for i, d := range rec.Details {
		details[i] = models.ReconciliationDetail{
			ProductID:        int64(d.ProductID),
			Code:             d.Code,
			Description:      d.Description,
			Category:         d.Category,
			RecordedQuantity: d.Recorded,
			PhysicalQuantity: d.Physical,
			Variance:         d.Variance,
			Status:           d.Class().String(),
			Observation:      d.Observation,
		}
	}

	return models.Reconciliation{
		ID:             rec.ID,
		CountedAt:      rec.Timestamp,
		Responsible:    rec.Operator,
		HasDifferences: rec.HasDifferences,
		Note:           notePtr(rec.Note),
		Details:        details,
	}
}
