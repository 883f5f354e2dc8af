// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"gymhum/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	avatars = []string{"🏋️", "🧘", "🏊", "🚴", "🏃", "💪"}

	workoutTypes = []string{
		"Strength Training", "Cardio", "HIIT", "Yoga",
		"Pilates", "CrossFit", "Swimming", "Cycling",
	}

	difficulties = []string{"Easy", "Moderate", "Hard", "Advanced"}

	planPrefixes = []string{"Lean", "Bulk", "Keto", "Vegan"}
	planSuffixes = []string{"Meal", "Plan", "Nutrition"}
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user. All seeded users share
// the password "password123". Optional override functions may modify the
// generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	user := &models.User{
		Username:     gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:        gofakeit.Email(),
		PasswordHash: string(hashedPassword),
		Avatar:       avatars[f.rand.Intn(len(avatars))],
		Bio:          gofakeit.Sentence(10),
		LastActive:   f.pastTime(90),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateWorkout constructs and persists a workout owned by the given user.
func (f *Factory) CreateWorkout(user *models.User, overrides ...func(*models.Workout)) (*models.Workout, error) {
	workout := &models.Workout{
		Name:        workoutTypes[f.rand.Intn(len(workoutTypes))] + " Session",
		Description: gofakeit.Sentence(12),
		Difficulty:  difficulties[f.rand.Intn(len(difficulties))],
		Duration:    gofakeit.Number(15, 120),
		Exercises:   fmt.Sprintf("%s, %s, %s", gofakeit.Noun(), gofakeit.Noun(), gofakeit.Noun()),
		UserID:      user.ID,
	}

	for _, override := range overrides {
		override(workout)
	}

	if err := f.db.Create(workout).Error; err != nil {
		return nil, err
	}
	return workout, nil
}

// CreatePost constructs and persists a post authored by the given user.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Content:   gofakeit.Paragraph(1, 3, 8, " "),
		Likes:     gofakeit.Number(0, 100),
		UserID:    user.ID,
		CreatedAt: f.pastTime(60),
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateChallenge constructs and persists a community challenge.
func (f *Factory) CreateChallenge(name string, target int, active bool) (*models.Challenge, error) {
	challenge := &models.Challenge{
		Name:        name,
		Description: gofakeit.Paragraph(1, 2, 10, " "),
		Target:      target,
		IsActive:    active,
	}

	if err := f.db.Create(challenge).Error; err != nil {
		return nil, err
	}
	return challenge, nil
}

// CreateNutritionPlan constructs and persists a plan owned by the given user.
func (f *Factory) CreateNutritionPlan(user *models.User) (*models.NutritionPlan, error) {
	plan := &models.NutritionPlan{
		Name:        planPrefixes[f.rand.Intn(len(planPrefixes))] + " " + planSuffixes[f.rand.Intn(len(planSuffixes))],
		Description: gofakeit.Paragraph(1, 2, 10, " "),
		Calories:    gofakeit.Number(1200, 3000),
		Protein:     gofakeit.Number(50, 200),
		Carbs:       gofakeit.Number(50, 400),
		Fats:        gofakeit.Number(20, 150),
		UserID:      user.ID,
	}

	if err := f.db.Create(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

// CreateFriendship persists an edge between two users with the given status.
func (f *Factory) CreateFriendship(requester, addressee *models.User, status models.FriendshipStatus) (*models.Friendship, error) {
	friendship := &models.Friendship{
		RequesterID: requester.ID,
		AddresseeID: addressee.ID,
		Status:      status,
	}

	if err := f.db.Create(friendship).Error; err != nil {
		return nil, err
	}
	return friendship, nil
}

// pastTime returns a random time within the past maxDays days.
func (f *Factory) pastTime(maxDays int) time.Time {
	daysBack := f.rand.Intn(maxDays)
	hoursBack := f.rand.Intn(24)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)
}
