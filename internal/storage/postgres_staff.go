package storage

import (
	"coffeeshop-pos/internal/domain"
)

// CreateProfile defaults the role to cashier when none is given, matching
// what signup does for new accounts.
func (r *PostgresRepository) CreateProfile(profile *domain.Profile) error {
	if profile.Role == "" {
		profile.Role = domain.RoleCashier
	}
	return r.DB.QueryRow(`
		INSERT INTO profiles (full_name, role)
		VALUES ($1, $2)
		RETURNING user_id, created_at`,
		profile.FullName, string(profile.Role)).
		Scan(&profile.UserID, &profile.CreatedAt)
}

func (r *PostgresRepository) ListProfiles() ([]domain.Profile, error) {
	rows, err := r.DB.Query(`
		SELECT user_id, full_name, role, created_at
		FROM profiles
		ORDER BY full_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var profile domain.Profile
		if err := rows.Scan(&profile.UserID, &profile.FullName, &profile.Role, &profile.CreatedAt); err != nil {
			continue
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (r *PostgresRepository) GetProfile(userID int) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.DB.QueryRow(`
		SELECT user_id, full_name, role, created_at
		FROM profiles
		WHERE user_id = $1`, userID).
		Scan(&profile.UserID, &profile.FullName, &profile.Role, &profile.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *PostgresRepository) UpdateProfileName(userID int, fullName string) error {
	_, err := r.DB.Exec("UPDATE profiles SET full_name=$1 WHERE user_id=$2", fullName, userID)
	return err
}

func (r *PostgresRepository) UpdateProfileRole(userID int, role domain.Role) error {
	_, err := r.DB.Exec("UPDATE profiles SET role=$1 WHERE user_id=$2", string(role), userID)
	return err
}
