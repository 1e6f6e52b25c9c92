package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// TxRunner wraps a function in a MongoDB transaction. All repository calls
// made with the callback's context join the same session.
type TxRunner struct {
	Client *mongo.Client
}

func NewTxRunner(client *mongo.Client) *TxRunner {
	return &TxRunner{Client: client}
}

func (r *TxRunner) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
