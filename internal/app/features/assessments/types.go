// internal/app/features/assessments/types.go
package assessments

import (
	"time"

	"github.com/secassess/assesshub/internal/domain/models"
)

// assessmentView is the full JSON representation of one assessment,
// including its items.
type assessmentView struct {
	ID        string     `json:"id"`
	ProjectID string     `json:"projectId"`
	Title     string     `json:"title"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Items     []itemView `json:"items"`
}

type itemView struct {
	ID           string  `json:"id"`
	CriterionRef *string `json:"criterionRef"`
	Section      string  `json:"section"`
	Text         string  `json:"text"`
	Severity     string  `json:"severity"`
	Weight       float64 `json:"weight"`
	Score        *int    `json:"score"`
	Notes        string  `json:"notes,omitempty"`
}

// listResponse is one cached page. Rows carry their items, matching the
// single-assessment representation.
type listResponse struct {
	Assessments   []assessmentView `json:"assessments"`
	Page          int              `json:"page"`
	Size          int              `json:"size"`
	TotalElements int64            `json:"totalElements"`
	TotalPages    int64            `json:"totalPages"`
}

func toItemView(item models.AssessmentItem) itemView {
	v := itemView{
		ID:       item.ID.Hex(),
		Section:  item.Section,
		Text:     item.Text,
		Severity: item.Severity,
		Weight:   item.Weight,
		Score:    item.Score,
		Notes:    item.Notes,
	}
	if item.CriterionRef != nil {
		ref := item.CriterionRef.Hex()
		v.CriterionRef = &ref
	}
	return v
}

func toAssessmentView(a models.Assessment, items []models.AssessmentItem) assessmentView {
	views := make([]itemView, 0, len(items))
	for _, item := range items {
		views = append(views, toItemView(item))
	}
	return assessmentView{
		ID:        a.ID.Hex(),
		ProjectID: a.ProjectID.Hex(),
		Title:     a.Title,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		Items:     views,
	}
}
