package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eventos-app/backend/internal/models"
)

// BusinessService issues business-collection queries. Business event
// and manager references are one-directional: only the business side is
// ever written.
type BusinessService struct {
	businesses *mongo.Collection
	events     *mongo.Collection
	users      *mongo.Collection
}

func NewBusinessService(db *mongo.Database) *BusinessService {
	return &BusinessService{
		businesses: db.Collection("businesses"),
		events:     db.Collection("events"),
		users:      db.Collection("users"),
	}
}

func (s *BusinessService) Create(ctx context.Context, business *models.Business) (*models.Business, error) {
	business.Active = true
	if business.Events == nil {
		business.Events = []primitive.ObjectID{}
	}
	if business.Managers == nil {
		business.Managers = []primitive.ObjectID{}
	}

	res, err := s.businesses.InsertOne(ctx, business)
	if err != nil {
		return nil, wrapMongoErr(err)
	}
	business.ID = res.InsertedID.(primitive.ObjectID)
	return business, nil
}

func (s *BusinessService) list(ctx context.Context, filter bson.M, skip, limit int) ([]models.PopulatedBusiness, int64, error) {
	opts := options.Find().SetSkip(int64(skip)).SetLimit(int64(limit))
	cursor, err := s.businesses.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	var businesses []models.Business
	if err := cursor.All(ctx, &businesses); err != nil {
		return nil, 0, err
	}

	populated := []models.PopulatedBusiness{}
	for i := range businesses {
		p, err := s.populate(ctx, &businesses[i])
		if err != nil {
			return nil, 0, err
		}
		populated = append(populated, *p)
	}

	total, err := s.businesses.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return populated, total, nil
}

func (s *BusinessService) GetAll(ctx context.Context, skip, limit int) ([]models.PopulatedBusiness, int64, error) {
	return s.list(ctx, bson.M{"active": true}, skip, limit)
}

func (s *BusinessService) GetAllWithInactive(ctx context.Context, skip, limit int) ([]models.PopulatedBusiness, int64, error) {
	return s.list(ctx, bson.M{}, skip, limit)
}

func (s *BusinessService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.PopulatedBusiness, error) {
	var business models.Business
	err := s.businesses.FindOne(ctx, bson.M{"_id": id, "active": true}).Decode(&business)
	if err != nil {
		return nil, wrapMongoErr(err)
	}
	return s.populate(ctx, &business)
}

func (s *BusinessService) update(ctx context.Context, id primitive.ObjectID, change bson.M) (*models.PopulatedBusiness, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var business models.Business
	err := s.businesses.FindOneAndUpdate(ctx, bson.M{"_id": id}, change, opts).Decode(&business)
	if err != nil {
		return nil, wrapMongoErr(err)
	}
	return s.populate(ctx, &business)
}

func (s *BusinessService) UpdateByID(ctx context.Context, id primitive.ObjectID, patch bson.M) (*models.PopulatedBusiness, error) {
	return s.update(ctx, id, bson.M{"$set": patch})
}

func (s *BusinessService) DisableByID(ctx context.Context, id primitive.ObjectID) (*models.PopulatedBusiness, error) {
	return s.update(ctx, id, bson.M{"$set": bson.M{"active": false}})
}

func (s *BusinessService) ReactivateByID(ctx context.Context, id primitive.ObjectID) (*models.PopulatedBusiness, error) {
	return s.update(ctx, id, bson.M{"$set": bson.M{"active": true}})
}

func (s *BusinessService) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.Business, error) {
	var business models.Business
	if err := s.businesses.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&business); err != nil {
		return nil, wrapMongoErr(err)
	}
	return &business, nil
}

func (s *BusinessService) AddEvent(ctx context.Context, businessID, eventID primitive.ObjectID) (*models.PopulatedBusiness, error) {
	return s.update(ctx, businessID, bson.M{"$addToSet": bson.M{"events": eventID}})
}

func (s *BusinessService) RemoveEvent(ctx context.Context, businessID, eventID primitive.ObjectID) (*models.PopulatedBusiness, error) {
	return s.update(ctx, businessID, bson.M{"$pull": bson.M{"events": eventID}})
}

func (s *BusinessService) AddManager(ctx context.Context, businessID, managerID primitive.ObjectID) (*models.PopulatedBusiness, error) {
	return s.update(ctx, businessID, bson.M{"$addToSet": bson.M{"managers": managerID}})
}

func (s *BusinessService) RemoveManager(ctx context.Context, businessID, managerID primitive.ObjectID) (*models.PopulatedBusiness, error) {
	return s.update(ctx, businessID, bson.M{"$pull": bson.M{"managers": managerID}})
}

func (s *BusinessService) populate(ctx context.Context, business *models.Business) (*models.PopulatedBusiness, error) {
	events := []models.Event{}
	if len(business.Events) > 0 {
		cursor, err := s.events.Find(ctx, bson.M{"_id": bson.M{"$in": business.Events}})
		if err != nil {
			return nil, err
		}
		if err := cursor.All(ctx, &events); err != nil {
			return nil, err
		}
	}

	managers := []models.UserRef{}
	if len(business.Managers) > 0 {
		opts := options.Find().SetProjection(userRefProjection)
		cursor, err := s.users.Find(ctx, bson.M{"_id": bson.M{"$in": business.Managers}}, opts)
		if err != nil {
			return nil, err
		}
		if err := cursor.All(ctx, &managers); err != nil {
			return nil, err
		}
	}

	return &models.PopulatedBusiness{
		ID:       business.ID,
		Name:     business.Name,
		Address:  business.Address,
		Phone:    business.Phone,
		Email:    business.Email,
		Events:   events,
		Managers: managers,
		Active:   business.Active,
	}, nil
}
