package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/docuvault/dms/internal/core/domain"
)

const typesCollection = "types"

// TypeRepository implements ports.TypeRepository on a MongoDB collection.
type TypeRepository struct {
	coll *mongo.Collection
}

func NewTypeRepository(db *mongo.Database) *TypeRepository {
	return &TypeRepository{coll: db.Collection(typesCollection)}
}

type typeDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Title string             `bson:"title"`
}

func (d typeDoc) toDomain() *domain.DocumentType {
	return &domain.DocumentType{ID: d.ID.Hex(), Title: d.Title}
}

func (r *TypeRepository) List(ctx context.Context) ([]domain.DocumentType, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list types: %w", err)
	}
	defer cur.Close(ctx)

	types := make([]domain.DocumentType, 0)
	for cur.Next(ctx) {
		var d typeDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode type: %w", err)
		}
		types = append(types, *d.toDomain())
	}
	return types, cur.Err()
}

func (r *TypeRepository) FindByID(ctx context.Context, id string) (*domain.DocumentType, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTypeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d typeDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTypeNotFound
		}
		return nil, fmt.Errorf("find type: %w", err)
	}
	return d.toDomain(), nil
}

func (r *TypeRepository) FindByTitle(ctx context.Context, title string) (*domain.DocumentType, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d typeDoc
	if err := r.coll.FindOne(ctx, bson.M{"title": title}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTypeNotFound
		}
		return nil, fmt.Errorf("find type by title: %w", err)
	}
	return d.toDomain(), nil
}

func (r *TypeRepository) Create(ctx context.Context, t *domain.DocumentType) (*domain.DocumentType, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, typeDoc{Title: t.Title})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateType
		}
		return nil, fmt.Errorf("insert type: %w", err)
	}

	oid := res.InsertedID.(primitive.ObjectID)
	return &domain.DocumentType{ID: oid.Hex(), Title: t.Title}, nil
}

func (r *TypeRepository) Update(ctx context.Context, t *domain.DocumentType) (*domain.DocumentType, error) {
	oid, err := primitive.ObjectIDFromHex(t.ID)
	if err != nil {
		return nil, domain.ErrTypeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"title": t.Title}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateType
		}
		return nil, fmt.Errorf("update type: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrTypeNotFound
	}
	return t, nil
}

func (r *TypeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTypeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete type: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTypeNotFound
	}
	return nil
}
