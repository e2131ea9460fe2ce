package model

type Campaign struct {
	ID       int    `db:"id" json:"id"`
	Product  string `db:"product" json:"product"`
	Industry string `db:"industry" json:"industry"`
	Cost     string `db:"cost" json:"cost"`
	Audience string `db:"audience" json:"audience"`
	Platform string `db:"platform" json:"platform"`
	Result   string `db:"result" json:"result"`
	UserID   *int   `db:"user_id" json:"user_id,omitempty"`
}
