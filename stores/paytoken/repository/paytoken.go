package repository

import (
	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/base/log"
	"github.com/tributary-xyz/goapi/domain"
	"github.com/tributary-xyz/goapi/service/query"
)

type payTokenRepo struct {
	q query.Mongo
}

func NewPayTokenRepo(q query.Mongo) domain.PayTokenRepo {
	return &payTokenRepo{q}
}

func (im *payTokenRepo) FindOne(ctx ctx.Ctx, chainId domain.ChainId, address domain.Address) (*domain.PayToken, error) {
	id := domain.PayTokenId{ChainId: chainId, Address: address.ToLower()}
	payToken := &domain.PayToken{}
	err := im.q.FindOne(ctx, domain.TablePayTokens, id, payToken)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return payToken, nil
}

func (im *payTokenRepo) Upsert(ctx ctx.Ctx, payToken *domain.PayToken) error {
	payToken.Address = payToken.Address.ToLower()
	if err := im.q.Upsert(ctx, domain.TablePayTokens, payToken.ToId(), payToken); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"payToken": payToken,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
