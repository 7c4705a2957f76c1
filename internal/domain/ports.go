package domain

import "context"

// RecipeLibrary holds the user's saved recipes. Implementations can be
// in-memory or backed by the app's persistence layer.
type RecipeLibrary interface {
	Add(ctx context.Context, r *Recipe) (string, error)
	Get(ctx context.Context, id string) (*Recipe, error)
	List(ctx context.Context) ([]RecipeSummary, error)
	Search(ctx context.Context, query string) ([]RecipeSummary, error)
	Remove(ctx context.Context, id string) error
	// Pool returns every complete recipe, for meal planning.
	Pool(ctx context.Context) ([]Recipe, error)
}

// ProfileStore holds named kitchen profiles (home, travel, work).
type ProfileStore interface {
	Get(ctx context.Context, name string) (KitchenProfile, error)
	Save(ctx context.Context, p KitchenProfile) error
	Names(ctx context.Context) ([]string, error)
}

// PostFeed is the community feed of photo posts.
type PostFeed interface {
	Publish(ctx context.Context, p Post) (string, error)
	List(ctx context.Context) ([]Post, error)
	Like(ctx context.Context, id string) error
}
