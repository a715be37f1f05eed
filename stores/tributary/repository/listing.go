package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/base/log"
	"github.com/tributary-xyz/goapi/domain"
	"github.com/tributary-xyz/goapi/domain/tributary"
	"github.com/tributary-xyz/goapi/service/query"
)

type listingRepo struct {
	q query.Mongo
}

func NewListingRepo(q query.Mongo) tributary.ListingRepo {
	return &listingRepo{q}
}

func (im *listingRepo) makeQuery(options tributary.ListingFindAllOptions) (bson.M, error) {
	query := bson.M{}

	if options.ChainId != nil {
		query["chainId"] = *options.ChainId
	}

	if options.Token != nil {
		query["token"] = *options.Token
	}

	if options.Vault != nil {
		query["vault"] = *options.Vault
	}

	if options.Seller != nil {
		query["seller"] = *options.Seller
	}

	if options.PaymentToken != nil {
		query["paymentToken"] = *options.PaymentToken
	}

	if options.IsActive != nil {
		query["isActive"] = *options.IsActive
	}

	if options.IsPrimarySale != nil {
		query["isPrimarySale"] = *options.IsPrimarySale
	}

	if options.ExpiresAfter != nil {
		query["expiresAt"] = bson.M{"$gt": *options.ExpiresAfter}
	}

	if options.CreatedBefore != nil {
		query["createdAt"] = bson.M{"$lte": *options.CreatedBefore}
	}

	return query, nil
}

func (im *listingRepo) FindAll(ctx ctx.Ctx, opts ...tributary.ListingFindAllOptionsFunc) ([]*tributary.Listing, error) {
	options, err := tributary.GetListingFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}

	qry, err := im.makeQuery(options)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery failed")
		return nil, err
	}

	offset := int(0)
	limit := int(0)
	sort := "listingId"

	if options.Offset != nil {
		offset = int(*options.Offset)
	}

	if options.Limit != nil {
		limit = int(*options.Limit)
	}

	if options.Sort != nil {
		sort = *options.Sort
	}

	res := []*tributary.Listing{}
	if err := im.q.Search(ctx, domain.TableListings, offset, limit, sort, qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (im *listingRepo) FindOne(ctx ctx.Ctx, id tributary.ListingId) (*tributary.Listing, error) {
	listing := &tributary.Listing{}
	err := im.q.FindOne(ctx, domain.TableListings, id, listing)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return listing, nil
}

func (im *listingRepo) Count(ctx ctx.Ctx, opts ...tributary.ListingFindAllOptionsFunc) (int, error) {
	options, err := tributary.GetListingFindAllOptions(opts...)
	if err != nil {
		return 0, err
	}

	qry, err := im.makeQuery(options)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery failed")
		return 0, err
	}

	cnt, err := im.q.Count(ctx, domain.TableListings, qry)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.Count failed")
		return 0, err
	}
	return cnt, nil
}

func (im *listingRepo) Upsert(ctx ctx.Ctx, listing *tributary.Listing) error {
	listing.LowerCase()
	if err := im.q.Upsert(ctx, domain.TableListings, listing.ToId(), listing); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"listing": listing,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *listingRepo) Update(ctx ctx.Ctx, id tributary.ListingId, patchable tributary.ListingPatchable) error {
	if err := im.q.Patch(ctx, domain.TableListings, id, patchable); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"id":        id,
			"patchable": patchable,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (im *listingRepo) RemoveAll(ctx ctx.Ctx, opts ...tributary.ListingFindAllOptionsFunc) error {
	options, err := tributary.GetListingFindAllOptions(opts...)
	if err != nil {
		return err
	}

	qry, err := im.makeQuery(options)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery failed")
		return err
	}

	if _, err := im.q.RemoveAll(ctx, domain.TableListings, qry); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.RemoveAll failed")
		return err
	}
	return nil
}
