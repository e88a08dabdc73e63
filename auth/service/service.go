package service

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"time"

	"github.com/ThomasSalomon/chicosAPP-V2/auth/storage"
	"github.com/ThomasSalomon/chicosAPP-V2/auth/users"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const passwordCost = 12

const defaultExpiration = time.Hour * 24 * 7

type Service struct {
	storage storage.AuthStorage
	cfg     Config
	rules   []accessRule
}

type accessRule struct {
	path    *regexp.Regexp
	methods mapset.Set[string]
	allow   mapset.Set[string]
}

var (
	ErrForbidden          = errors.New("access denied")
	ErrNotAuthorized      = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = storage.ErrEmailTaken
)

type claims struct {
	jwt.StandardClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

func New(ctx context.Context, cfg Config, storage storage.AuthStorage) (*Service, error) {
	s := Service{
		cfg:     cfg,
		storage: storage,
	}
	if len(cfg.Rules) == 0 {
		cfg.Rules = DefaultRules()
	}
	for _, rule := range cfg.Rules {
		r, err := regexp.Compile(rule.Path)
		if err != nil {
			return nil, err
		}
		s.rules = append(s.rules, accessRule{
			path:    r,
			methods: mapset.NewSet(rule.Method...),
			allow:   mapset.NewSet(rule.Allow...),
		})
	}
	if cfg.RootEmail != "" {
		if err := s.bootstrapRoot(ctx); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

// bootstrapRoot creates the configured admin account on first start so a
// fresh deployment has someone able to promote other users.
func (s *Service) bootstrapRoot(ctx context.Context) error {
	_, err := s.storage.GetUserByEmail(ctx, s.cfg.RootEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.RootPassword), passwordCost)
	if err != nil {
		return err
	}
	name := s.cfg.RootName
	if name == "" {
		name = "root"
	}
	return s.storage.CreateUser(ctx, users.User{
		ID:           uuid.New(),
		Email:        s.cfg.RootEmail,
		Name:         name,
		Role:         users.RoleAdmin,
		RegisteredAt: time.Now(),
	}, string(hash))
}

func (s *Service) Register(ctx context.Context, email, password, name string, role users.Role) (users.User, string, error) {
	if role == "" {
		role = users.RoleCoach
	}
	if !role.Valid() {
		return users.User{}, "", errors.New("unknown role: " + string(role))
	}
	_, err := s.storage.GetUserByEmail(ctx, email)
	if err == nil {
		return users.User{}, "", ErrEmailTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return users.User{}, "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return users.User{}, "", err
	}
	user := users.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		Role:         role,
		RegisteredAt: time.Now(),
	}
	err = s.storage.CreateUser(ctx, user, string(hash))
	if err != nil {
		return users.User{}, "", err
	}
	token, err := s.generateToken(user)
	if err != nil {
		return users.User{}, "", err
	}
	return user, token, nil
}

// Login deliberately reports the same error for an unknown email and a wrong
// password, so the endpoint does not leak which accounts exist.
func (s *Service) Login(ctx context.Context, email, password string) (users.User, string, error) {
	hash, err := s.storage.GetPasswordHash(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, "", ErrInvalidCredentials
		}
		return users.User{}, "", err
	}
	err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		return users.User{}, "", ErrInvalidCredentials
	}
	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		return users.User{}, "", err
	}
	token, err := s.generateToken(user)
	if err != nil {
		return users.User{}, "", err
	}
	return user, token, nil
}

func (s *Service) generateToken(user users.User) (string, error) {
	expiresIn := defaultExpiration
	if s.cfg.Expiration != "" {
		d, err := time.ParseDuration(s.cfg.Expiration)
		if err != nil {
			return "", err
		}
		expiresIn = d
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(expiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Subject:   user.ID.String(),
		},
		Email: user.Email,
		Role:  string(user.Role),
	})
	return token.SignedString([]byte(s.cfg.Token))
}

// VerifyToken resolves a bearer token to its user. Any parsing or lookup
// failure collapses into ErrNotAuthorized.
func (s *Service) VerifyToken(ctx context.Context, tokenString string) (users.User, error) {
	user, err := s.userFromToken(ctx, tokenString)
	if err != nil {
		return users.User{}, ErrNotAuthorized
	}
	return user, nil
}

func (s *Service) Authorize(ctx context.Context, tokenString, method, path string) (users.User, error) {
	user, err := s.userFromToken(ctx, tokenString)
	if err != nil {
		return users.User{}, ErrNotAuthorized
	}
	for _, rule := range s.rules {
		if !rule.path.MatchString(path) {
			continue
		}
		if !rule.methods.Contains("*") && !rule.methods.Contains(method) {
			continue
		}
		if rule.allow.Contains("*") || rule.allow.Contains(string(user.Role)) {
			return user, nil
		}
		return users.User{}, ErrForbidden
	}
	return users.User{}, ErrForbidden
}

func (s *Service) userFromToken(ctx context.Context, tokenString string) (users.User, error) {
	if tokenString == "" {
		return users.User{}, errors.New("empty token")
	}
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.Token), nil
	})
	if err != nil {
		return users.User{}, err
	}
	if !token.Valid {
		return users.User{}, errors.New("invalid token")
	}
	c, ok := token.Claims.(*claims)
	if !ok {
		return users.User{}, errors.New("bad claims")
	}
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return users.User{}, err
	}
	return s.storage.GetUser(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context) ([]users.User, error) {
	return s.storage.ListUsers(ctx)
}

func (s *Service) PromoteToAdmin(ctx context.Context, id uuid.UUID) (users.User, error) {
	err := s.storage.UpdateUserRole(ctx, id, users.RoleAdmin)
	if err != nil {
		return users.User{}, err
	}
	return s.storage.GetUser(ctx, id)
}
