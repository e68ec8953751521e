package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/docuvault/dms/internal/core/domain"
)

const documentsCollection = "documents"

// DocumentRepository implements ports.DocumentRepository on a MongoDB collection.
type DocumentRepository struct {
	coll *mongo.Collection
}

func NewDocumentRepository(db *mongo.Database) *DocumentRepository {
	return &DocumentRepository{coll: db.Collection(documentsCollection)}
}

type typeRefDoc struct {
	ID    primitive.ObjectID `bson:"_id"`
	Title string             `bson:"title"`
}

type documentDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	OwnerID   primitive.ObjectID `bson:"owner_id"`
	Type      typeRefDoc         `bson:"type"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func toDocumentDoc(doc *domain.Document) (documentDoc, error) {
	ownerID, err := primitive.ObjectIDFromHex(doc.OwnerID)
	if err != nil {
		return documentDoc{}, fmt.Errorf("document owner id: %w", err)
	}
	typeID, err := primitive.ObjectIDFromHex(doc.Type.ID)
	if err != nil {
		return documentDoc{}, fmt.Errorf("document type id: %w", err)
	}
	return documentDoc{
		Title:     doc.Title,
		Content:   doc.Content,
		OwnerID:   ownerID,
		Type:      typeRefDoc{ID: typeID, Title: doc.Type.Title},
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

func (d documentDoc) toDomain() *domain.Document {
	return &domain.Document{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Content:   d.Content,
		OwnerID:   d.OwnerID.Hex(),
		Type:      domain.TypeRef{ID: d.Type.ID.Hex(), Title: d.Type.Title},
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

func (r *DocumentRepository) List(ctx context.Context) ([]domain.Document, error) {
	return r.find(ctx, bson.M{})
}

func (r *DocumentRepository) FindByID(ctx context.Context, id string) (*domain.Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDocumentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d documentDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("find document: %w", err)
	}
	return d.toDomain(), nil
}

func (r *DocumentRepository) Create(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	d, err := toDocumentDoc(doc)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}

	created := *doc
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *DocumentRepository) Update(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	oid, err := primitive.ObjectIDFromHex(doc.ID)
	if err != nil {
		return nil, domain.ErrDocumentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":      doc.Title,
		"content":    doc.Content,
		"updated_at": doc.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update document: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrDocumentNotFound
	}
	return doc, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrDocumentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

// Search matches query case-insensitively against title and content. The
// query is regex-escaped so user input is treated as a literal substring.
// Results are sorted by _id ascending, which follows insertion order.
func (r *DocumentRepository) Search(ctx context.Context, query string) ([]domain.Document, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"title": pattern},
		bson.M{"content": pattern},
	}}
	return r.find(ctx, filter)
}

func (r *DocumentRepository) find(ctx context.Context, filter bson.M) ([]domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find documents: %w", err)
	}
	defer cur.Close(ctx)

	docs := make([]domain.Document, 0)
	for cur.Next(ctx) {
		var d documentDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		docs = append(docs, *d.toDomain())
	}
	return docs, cur.Err()
}
