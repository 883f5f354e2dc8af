// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"gymhum/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seeder populates the database with demo data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	rand    *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		db:      db,
		factory: NewFactory(db),
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded data. Join tables drop first so foreign keys
// never dangle.
func (s *Seeder) ClearAll() error {
	tables := []interface{}{
		&models.UserChallenge{},
		&models.Friendship{},
		&models.RefreshToken{},
		&models.Post{},
		&models.Workout{},
		&models.NutritionPlan{},
		&models.Challenge{},
		&models.Product{},
		&models.User{},
	}
	for _, table := range tables {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(table).Error; err != nil {
			return fmt.Errorf("failed to clear table %T: %w", table, err)
		}
	}
	return nil
}

// Seed populates the database with demo data.
func (s *Seeder) Seed(opts Options) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}
	}

	users, err := s.seedUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d users created", len(users))

	if err := s.seedWorkouts(users, opts.NumUsers*2); err != nil {
		return fmt.Errorf("failed to create workouts: %w", err)
	}

	challenges, err := s.seedChallenges()
	if err != nil {
		return fmt.Errorf("failed to create challenges: %w", err)
	}
	log.Printf("✓ %d challenges created", len(challenges))

	if err := s.seedParticipations(users, challenges); err != nil {
		return fmt.Errorf("failed to create challenge participations: %w", err)
	}

	if err := s.seedPosts(users, opts.NumPosts); err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", opts.NumPosts)

	if err := s.seedFriendships(users); err != nil {
		return fmt.Errorf("failed to create friendships: %w", err)
	}

	if err := s.seedNutritionPlans(users, opts.NumUsers*3); err != nil {
		return fmt.Errorf("failed to create nutrition plans: %w", err)
	}

	if err := s.seedProducts(); err != nil {
		return fmt.Errorf("failed to create products: %w", err)
	}

	log.Println("Database seeding completed successfully")
	return nil
}

func (s *Seeder) seedUsers(num int) ([]*models.User, error) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	admin := &models.User{
		Username:     "admin",
		Email:        "admin@gymhum.com",
		PasswordHash: string(hashedPassword),
		Avatar:       "💪",
		Bio:          "Site administrator",
		IsAdmin:      true,
		LastActive:   time.Now(),
	}
	if err := s.db.Create(admin).Error; err != nil {
		return nil, err
	}

	users := []*models.User{admin}
	for i := 0; i < num; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) seedWorkouts(users []*models.User, num int) error {
	for i := 0; i < num; i++ {
		user := users[s.rand.Intn(len(users))]
		if _, err := s.factory.CreateWorkout(user); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedChallenges() ([]*models.Challenge, error) {
	specs := []struct {
		name   string
		target int
		active bool
	}{
		{"30-Day Fitness Challenge", 30, true},
		{"90-Day Nutrition Challenge", 90, true},
		{"Weekly Wellness Challenge", 7, true},
		{"Monthly Yoga Challenge", 28, true},
		{"Weekly Running Challenge", 14, false},
	}

	challenges := make([]*models.Challenge, 0, len(specs))
	for _, spec := range specs {
		challenge, err := s.factory.CreateChallenge(spec.name, spec.target, spec.active)
		if err != nil {
			return nil, err
		}
		challenges = append(challenges, challenge)
	}
	return challenges, nil
}

func (s *Seeder) seedParticipations(users []*models.User, challenges []*models.Challenge) error {
	for _, user := range users {
		joined := make(map[uint]bool)
		for i := 0; i < 1+s.rand.Intn(3); i++ {
			challenge := challenges[s.rand.Intn(len(challenges))]
			if joined[challenge.ID] {
				continue
			}
			joined[challenge.ID] = true

			progress := s.rand.Intn(challenge.Target + 1)
			participation := &models.UserChallenge{
				UserID:      user.ID,
				ChallengeID: challenge.ID,
				Progress:    progress,
				Completed:   progress >= challenge.Target,
			}
			if err := s.db.Create(participation).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) seedPosts(users []*models.User, num int) error {
	for i := 0; i < num; i++ {
		user := users[s.rand.Intn(len(users))]
		if _, err := s.factory.CreatePost(user); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedFriendships(users []*models.User) error {
	for _, user := range users {
		numFriends := 3 + s.rand.Intn(8)
		if max := len(users) - 1; numFriends > max {
			numFriends = max
		}

		candidates := make([]*models.User, 0, len(users)-1)
		for _, u := range users {
			if u.ID != user.ID {
				candidates = append(candidates, u)
			}
		}
		s.rand.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})

		for _, friend := range candidates[:numFriends] {
			var count int64
			if err := s.db.Model(&models.Friendship{}).
				Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
					user.ID, friend.ID, friend.ID, user.ID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			status := models.FriendshipStatusAccepted
			if s.rand.Float64() <= 0.3 {
				status = models.FriendshipStatusPending
			}
			if _, err := s.factory.CreateFriendship(user, friend, status); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) seedNutritionPlans(users []*models.User, num int) error {
	for i := 0; i < num; i++ {
		user := users[s.rand.Intn(len(users))]
		if _, err := s.factory.CreateNutritionPlan(user); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedProducts() error {
	products := []models.Product{
		{
			Name:     "Leg Press Machine",
			Features: "Heavy-duty leg press machine with adjustable resistance. Ideal for building lower body strength.",
			Price:    1299.99,
			Category: "Equipment",
			ImageURL: "/images/leg_machine.jpg",
		},
		{
			Name:     "Adjustable Gym Recliner",
			Features: "Ergonomic recliner designed for post-workout recovery or seated exercises. Durable and comfortable.",
			Price:    499.50,
			Category: "Equipment",
			ImageURL: "/images/recliner.jpeg",
		},
		{
			Name:     "Veriliss 3pcs Gym Set (Women)",
			Features: "Stylish and breathable activewear set including leggings, sports bra, and top. Perfect for daily training.",
			Price:    74.99,
			Category: "Apparel",
			ImageURL: "/images/veriliss-3pcs-gym-clothes-for-women.jpg",
		},
	}

	for i := range products {
		if err := s.db.Create(&products[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
