package entity

import "time"

// Selection is one customer pick from each of the three categories.
type Selection struct {
	Sandwich string `json:"sandwich"`
	Crisps   string `json:"crisps"`
	Snack    string `json:"snack"`
}

// Order is an immutable record of a completed submission. Names and prices
// are copied from the catalog at submission time; later menu edits must not
// change historical orders, so there are no foreign keys back to menu_items.
type Order struct {
	ID            int       `json:"id"`
	SandwichName  string    `json:"sandwich_name"`
	CrispsName    string    `json:"crisps_name"`
	SnackName     string    `json:"snack_name"`
	SandwichPrice float64   `json:"sandwich_price"`
	CrispsPrice   float64   `json:"crisps_price"`
	SnackPrice    float64   `json:"snack_price"`
	TotalPrice    float64   `json:"total_price"`
	OfferApplied  bool      `json:"offer_applied"`
	Savings       float64   `json:"savings"`
	CreatedAt     time.Time `json:"created_at"`
}

/*
MySQL schema:

CREATE TABLE orders (
	id INT AUTO_INCREMENT PRIMARY KEY,
	sandwich_name VARCHAR(100) NOT NULL,
	crisps_name VARCHAR(100) NOT NULL,
	snack_name VARCHAR(100) NOT NULL,
	sandwich_price DOUBLE NOT NULL,
	crisps_price DOUBLE NOT NULL,
	snack_price DOUBLE NOT NULL,
	total_price DOUBLE NOT NULL,
	offer_applied BOOLEAN NOT NULL,
	savings DOUBLE NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
*/
