package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestEnsureIndexesUniqueEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("users and newsletter", func(mt *mtest.T) {
		db := mockDB(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())

		require.NoError(mt, db.ensureIndexes(context.Background()))

		// One unique index on email per collection, enforcing at the DB what
		// the handlers check before inserting.
		for _, coll := range []string{"users", "newsletter"} {
			ev := mt.GetStartedEvent()
			require.NotNil(mt, ev, coll)
			assert.Equal(mt, "createIndexes", ev.CommandName, coll)
			assert.Equal(mt, coll, ev.Command.Lookup("createIndexes").StringValue())
			unique, ok := ev.Command.Lookup("indexes", "0", "unique").BooleanOK()
			require.True(mt, ok, coll)
			assert.True(mt, unique, coll)
			key, ok := ev.Command.Lookup("indexes", "0", "key", "email").Int32OK()
			require.True(mt, ok, coll)
			assert.Equal(mt, int32(1), key, coll)
		}
	})
}
