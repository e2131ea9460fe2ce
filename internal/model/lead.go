package model

type Lead struct {
	ID          int    `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Budget      string `db:"budget" json:"budget"`
	Need        string `db:"need" json:"need"`
	Urgency     string `db:"urgency" json:"urgency"`
	Score       int    `db:"score" json:"score"`
	Probability int    `db:"probability" json:"probability"`
	Analysis    string `db:"analysis" json:"analysis"`
	UserID      *int   `db:"user_id" json:"user_id,omitempty"`
}
