package templateRepo

import (
	"context"
	"fmt"

	"receptionist/database"
	"receptionist/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoTemplateRepo) Upsert(ctx context.Context, tpl *models.CustomResponseTemplate) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{"query_type": tpl.QueryType}
	update := bson.M{"$set": bson.M{
		"query_type":               tpl.QueryType,
		"custom_response_template": tpl.Template,
		"updated_at":               tpl.UpdatedAt,
	}}

	if _, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to upsert template %q: %w", tpl.QueryType, err)
	}
	return nil
}

func (r *mongoTemplateRepo) GetByQueryType(ctx context.Context, queryType string) (*models.CustomResponseTemplate, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var tpl models.CustomResponseTemplate
	if err := r.coll.FindOne(ctx, bson.M{"query_type": queryType}).Decode(&tpl); err != nil {
		return nil, database.Translate(err)
	}
	return &tpl, nil
}

func (r *mongoTemplateRepo) List(ctx context.Context) ([]models.CustomResponseTemplate, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "query_type", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch templates: %w", err)
	}
	defer cursor.Close(ctx)

	tpls := []models.CustomResponseTemplate{}
	if err := cursor.All(ctx, &tpls); err != nil {
		return nil, fmt.Errorf("error decoding templates: %w", err)
	}
	return tpls, nil
}

// EnsureIndexes enforces one template per query type.
func (r *mongoTemplateRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "query_type", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_query_type"),
	})
	if err != nil {
		return fmt.Errorf("failed to create template indexes: %w", err)
	}
	return nil
}
