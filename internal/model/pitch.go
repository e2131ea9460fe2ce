package model

type Pitch struct {
	ID       int    `db:"id" json:"id"`
	Product  string `db:"product" json:"product"`
	Customer string `db:"customer" json:"customer"`
	Result   string `db:"result" json:"result"`
	UserID   *int   `db:"user_id" json:"user_id,omitempty"`
}
