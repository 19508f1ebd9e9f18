package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eventos-app/backend/internal/models"
)

var userRefProjection = bson.M{"username": 1, "email": 1}

// EventService issues event-collection queries and keeps the event side
// of the user/event participation relationship consistent.
type EventService struct {
	events *mongo.Collection
	users  *mongo.Collection
}

func NewEventService(db *mongo.Database) *EventService {
	return &EventService{
		events: db.Collection("events"),
		users:  db.Collection("users"),
	}
}

// Create inserts the event and links every existing initial participant
// back to it. Ids of users that do not exist stay in the participant
// set without a reciprocal link.
func (s *EventService) Create(ctx context.Context, event *models.Event) (*models.PopulatedEvent, error) {
	event.Active = true
	if event.Participants == nil {
		event.Participants = []primitive.ObjectID{}
	}

	res, err := s.events.InsertOne(ctx, event)
	if err != nil {
		return nil, wrapMongoErr(err)
	}
	event.ID = res.InsertedID.(primitive.ObjectID)

	if len(event.Participants) > 0 {
		_, err := s.users.UpdateMany(ctx,
			bson.M{"_id": bson.M{"$in": event.Participants}},
			bson.M{"$addToSet": bson.M{"events": event.ID}},
		)
		if err != nil {
			return nil, err
		}
	}

	return s.populate(ctx, event)
}

func (s *EventService) list(ctx context.Context, filter bson.M, skip, limit int) ([]models.Event, int64, error) {
	opts := options.Find().SetSkip(int64(skip)).SetLimit(int64(limit))
	cursor, err := s.events.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	events := []models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, 0, err
	}

	total, err := s.events.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (s *EventService) GetAll(ctx context.Context, skip, limit int) ([]models.Event, int64, error) {
	return s.list(ctx, bson.M{"active": true}, skip, limit)
}

func (s *EventService) GetAllWithInactive(ctx context.Context, skip, limit int) ([]models.Event, int64, error) {
	return s.list(ctx, bson.M{}, skip, limit)
}

func (s *EventService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var event models.Event
	err := s.events.FindOne(ctx, bson.M{"_id": id, "active": true}).Decode(&event)
	if err != nil {
		return nil, wrapMongoErr(err)
	}
	return &event, nil
}

func (s *EventService) update(ctx context.Context, filter, patch bson.M) (*models.Event, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var event models.Event
	err := s.events.FindOneAndUpdate(ctx, filter, bson.M{"$set": patch}, opts).Decode(&event)
	if err != nil {
		return nil, wrapMongoErr(err)
	}
	return &event, nil
}

func (s *EventService) UpdateByID(ctx context.Context, id primitive.ObjectID, patch bson.M) (*models.Event, error) {
	return s.update(ctx, bson.M{"_id": id, "active": true}, patch)
}

func (s *EventService) DisableByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	return s.update(ctx, bson.M{"_id": id}, bson.M{"active": false})
}

func (s *EventService) ReactivateByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	return s.update(ctx, bson.M{"_id": id}, bson.M{"active": true})
}

// DeleteByID permanently removes an event. References to it held by
// users and businesses are left dangling.
func (s *EventService) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var event models.Event
	if err := s.events.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&event); err != nil {
		return nil, wrapMongoErr(err)
	}
	return &event, nil
}

// GetWithParticipants returns the event with its participant references
// resolved to username/email records. Lookup is by id regardless of
// active state.
func (s *EventService) GetWithParticipants(ctx context.Context, id primitive.ObjectID) (*models.PopulatedEvent, error) {
	var event models.Event
	if err := s.events.FindOne(ctx, bson.M{"_id": id}).Decode(&event); err != nil {
		return nil, wrapMongoErr(err)
	}
	return s.populate(ctx, &event)
}

// AddParticipant links a user into the event's participant set and the
// event into the user's event set. A missing user compensates the
// event-side write.
func (s *EventService) AddParticipant(ctx context.Context, eventID, userID primitive.ObjectID) (*models.PopulatedEvent, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var event models.Event
	err := s.events.FindOneAndUpdate(ctx,
		bson.M{"_id": eventID},
		bson.M{"$addToSet": bson.M{"participants": userID}},
		opts,
	).Decode(&event)
	if err != nil {
		return nil, wrapMongoErr(err)
	}

	res, err := s.users.UpdateByID(ctx, userID, bson.M{"$addToSet": bson.M{"events": eventID}})
	if err == nil && res.MatchedCount == 0 {
		err = ErrNotFound
	}
	if err != nil {
		_, _ = s.events.UpdateByID(ctx, eventID, bson.M{"$pull": bson.M{"participants": userID}})
		return nil, wrapMongoErr(err)
	}
	return s.populate(ctx, &event)
}

// RemoveParticipant unlinks both sides; a pair that was never linked is
// a no-op.
func (s *EventService) RemoveParticipant(ctx context.Context, eventID, userID primitive.ObjectID) (*models.PopulatedEvent, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var event models.Event
	err := s.events.FindOneAndUpdate(ctx,
		bson.M{"_id": eventID},
		bson.M{"$pull": bson.M{"participants": userID}},
		opts,
	).Decode(&event)
	if err != nil {
		return nil, wrapMongoErr(err)
	}

	if _, err := s.users.UpdateByID(ctx, userID, bson.M{"$pull": bson.M{"events": eventID}}); err != nil {
		return nil, err
	}
	return s.populate(ctx, &event)
}

func (s *EventService) populate(ctx context.Context, event *models.Event) (*models.PopulatedEvent, error) {
	participants := []models.UserRef{}
	if len(event.Participants) > 0 {
		opts := options.Find().SetProjection(userRefProjection)
		cursor, err := s.users.Find(ctx, bson.M{"_id": bson.M{"$in": event.Participants}}, opts)
		if err != nil {
			return nil, err
		}
		if err := cursor.All(ctx, &participants); err != nil {
			return nil, err
		}
	}

	return &models.PopulatedEvent{
		ID:           event.ID,
		Name:         event.Name,
		Schedule:     event.Schedule,
		Address:      event.Address,
		Participants: participants,
		Active:       event.Active,
	}, nil
}
