package entity

import "time"

// LoyaltyAccount is the per-user pepper points balance. The source kept two
// overlapping tables for this (`pepper_points` and `pepperpoints`); they are
// consolidated into a single entity here.
type LoyaltyAccount struct {
	ID             int64  `json:"id_pepper"`
	UserID         int64  `json:"id_usuario"`
	CardNumber     string `json:"num_tarjeta"`     // Membership card identifier, prefix + 6 zero-padded digits.
	Balance        int    `json:"puntos_actuales"` // Spendable points.
	LifetimeEarned int    `json:"puntos_totales"`  // Points ever credited.
	LifetimeSpent  int    `json:"puntos_gastados"` // Points ever redeemed.
}

// Redeemable is a product that can be exchanged for loyalty points instead
// of currency, within an optional activation window.
type Redeemable struct {
	ID          int64      `json:"id_canjeable"`
	ProductID   int64      `json:"id_producto"` // The catalog product handed over on redemption.
	Name        string     `json:"nombre"`
	Description string     `json:"descripcion"`
	PointsCost  int        `json:"costo_puntos"`
	Image       string     `json:"imagen"`
	StartsAt    *time.Time `json:"fecha_inicio"`
	ExpiresAt   *time.Time `json:"fecha_fin"`
}

// ActiveAt reports whether the redeemable can be exchanged at the given
// moment. A missing bound leaves that side of the window open.
func (r *Redeemable) ActiveAt(now time.Time) bool {
	if r.StartsAt != nil && now.Before(*r.StartsAt) {
		return false
	}
	if r.ExpiresAt != nil && now.After(*r.ExpiresAt) {
		return false
	}

	return true
}
