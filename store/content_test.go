package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func mockDB(mt *mtest.T) *DB {
	return &DB{Client: mt.Client, Database: mt.DB}
}

func TestListServicesSortsByOrderThenInsertion(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("sort document", func(mt *mtest.T) {
		db := mockDB(mt)
		ns := mt.DB.Name() + ".services"
		first := bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "a"}, {Key: "order", Value: 1}}
		second := bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "b"}, {Key: "order", Value: 1}}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, first, second))

		services, err := db.ListServices(context.Background(), false)
		require.NoError(mt, err)
		require.Len(mt, services, 2)
		assert.Equal(mt, "a", services[0].Title)

		ev := mt.GetStartedEvent()
		require.NotNil(mt, ev)
		assert.Equal(mt, "find", ev.CommandName)
		elems, err := ev.Command.Lookup("sort").Document().Elements()
		require.NoError(mt, err)
		require.Len(mt, elems, 2)
		// order ascending first; _id ascending resolves equal orders by
		// insertion.
		assert.Equal(mt, "order", elems[0].Key())
		assert.Equal(mt, "_id", elems[1].Key())
	})
}

func TestListServicesActiveOnlyFilter(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("public read excludes inactive", func(mt *mtest.T) {
		db := mockDB(mt)
		ns := mt.DB.Name() + ".services"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := db.ListServices(context.Background(), true)
		require.NoError(mt, err)

		ev := mt.GetStartedEvent()
		require.NotNil(mt, ev)
		active, ok := ev.Command.Lookup("filter", "active").BooleanOK()
		require.True(mt, ok)
		assert.True(mt, active)
	})
}
