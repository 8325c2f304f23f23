package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/wishlistbuddy/wishlist-backend/internal/users"
	"github.com/wishlistbuddy/wishlist-backend/internal/wishlist"
	"github.com/wishlistbuddy/wishlist-backend/pkg/config"
	"github.com/wishlistbuddy/wishlist-backend/pkg/docstore"
	pkgerrors "github.com/wishlistbuddy/wishlist-backend/pkg/errors"
	"github.com/wishlistbuddy/wishlist-backend/pkg/kv"
	"github.com/wishlistbuddy/wishlist-backend/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx := logg.WithBackend(context.Background(), cfg.Store.Backend)

	store, err := kv.New(ctx, cfg, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap key-value store", err)
		os.Exit(1)
	}

	client, err := docstore.NewClient(store, logg)
	if err != nil {
		logg.Error(ctx, "failed to create document store client", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Close(); err != nil {
			logg.Error(ctx, "error closing document store", err)
		}
	}()

	if err := client.Connect(ctx); err != nil {
		logg.Error(ctx, "failed to connect document store", err)
		os.Exit(1)
	}

	db := client.Database(cfg.Store.Database)
	userRepo := users.NewRepository(db)
	wishlistRepo := wishlist.NewRepository(db)

	if err := seed(ctx, logg, userRepo, wishlistRepo); err != nil {
		logg.Error(ctx, "seeding failed", err)
		os.Exit(1)
	}

	logg.Info(ctx, "demo data seeded")
}

func seed(ctx context.Context, logg *logger.Logger, userRepo *users.Repository, wishlistRepo *wishlist.Repository) error {
	ann, errAnn := ensureUser(ctx, userRepo, "Ann", "ann@example.com")
	bob, errBob := ensureUser(ctx, userRepo, "Bob", "bob@example.com")
	if err := multierr.Combine(errAnn, errBob); err != nil {
		return err
	}

	existing, err := wishlistRepo.ListForUser(ctx, ann.ID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logg.Info(logg.WithUserID(ctx, ann.ID), "demo wishlist already present, skipping")
		return nil
	}

	list, err := wishlistRepo.Create(ctx, wishlist.CreateWishlistDTO{
		Name:        "Ann's birthday",
		Description: "Gift ideas for the party",
		CreatorID:   ann.ID,
	})
	if err != nil {
		return err
	}

	var errs error
	mugImage := "https://example.com/images/mug.png"
	if _, err := wishlistRepo.AddProduct(ctx, list.ID, wishlist.CreateProductDTO{
		Name:      "Mug",
		Price:     decimal.NewFromFloat(9.99),
		ImageURL:  &mugImage,
		CreatorID: ann.ID,
	}); err != nil {
		errs = multierr.Append(errs, err)
	}
	if _, err := wishlistRepo.AddProduct(ctx, list.ID, wishlist.CreateProductDTO{
		Name:      "Wool socks",
		Price:     decimal.NewFromFloat(14.50),
		ImageURL:  nil,
		CreatorID: ann.ID,
	}); err != nil {
		errs = multierr.Append(errs, err)
	}
	if err := wishlistRepo.AddMember(ctx, list.ID, bob.ID); err != nil {
		errs = multierr.Append(errs, err)
	}
	return errs
}

func ensureUser(ctx context.Context, repo *users.Repository, name, email string) (*users.User, error) {
	user, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		return nil, err
	}
	return repo.Create(ctx, users.CreateUserDTO{Name: name, Email: email})
}
