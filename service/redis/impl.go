package redis

import (
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/base/log"
	"github.com/tributary-xyz/goapi/base/metrics"
)

const (
	keyAttribute = "key"

	// retTTLNoKey is the return value of TTL when the key does not exist
	retTTLNoKey = -2
)

// Pools represents different pool types
type Pools struct {
	Src *redis.Pool
}

type redImpl struct {
	name  string
	met   metrics.Service
	pools *Pools
}

// New redis pool
func New(name string, met metrics.Service, pools *Pools) Service {
	return &redImpl{
		name:  name,
		met:   met,
		pools: pools,
	}
}

func (r *redImpl) getConn() (redis.Conn, error) {
	defer r.met.BumpTime("getconn.time", "cluster", r.name).End()

	conn := r.pools.Src.Get()
	if err := conn.Err(); err != nil {
		r.met.BumpSum("getConn.err", 1, "cluster", r.name, "reason", err.Error())
		return nil, err
	}
	return conn, nil
}

func (r *redImpl) connDo(context ctx.Ctx, commandName string, args ...interface{}) (interface{}, error) {
	defer r.met.BumpTime("latency", "cluster", r.name, "command", commandName).End()

	conn, err := r.getConn()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	reply, err := conn.Do(commandName, args...)
	if err != nil {
		r.met.BumpSum("do.err", 1, "cluster", r.name, "command", commandName)
	}
	return reply, err
}

func (r *redImpl) Get(context ctx.Ctx, key string) ([]byte, error) {
	val, err := redis.Bytes(r.connDo(context, "GET", key))
	if err == redis.ErrNil {
		return nil, ErrNotFound
	} else if err != nil {
		context.WithFields(log.Fields{"err": err, keyAttribute: key}).Error("GET failed")
		return nil, err
	}
	return val, nil
}

func (r *redImpl) Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error {
	exSeconds := int(expire.Seconds())
	var err error
	if exSeconds > 0 {
		_, err = r.connDo(context, "SET", key, val, "EX", exSeconds)
	} else {
		_, err = r.connDo(context, "SET", key, val)
	}
	if err != nil {
		context.WithFields(log.Fields{"err": err, keyAttribute: key}).Error("SET failed")
		return err
	}
	return nil
}

func (r *redImpl) Del(context ctx.Ctx, ks ...string) (int, error) {
	args := make([]interface{}, len(ks))
	for i, k := range ks {
		args[i] = k
	}
	cnt, err := redis.Int(r.connDo(context, "DEL", args...))
	if err != nil {
		context.WithFields(log.Fields{"err": err, "keys": ks}).Error("DEL failed")
		return 0, err
	}
	return cnt, nil
}

func (r *redImpl) Exists(context ctx.Ctx, key string) (bool, error) {
	exists, err := redis.Bool(r.connDo(context, "EXISTS", key))
	if err != nil {
		context.WithFields(log.Fields{"err": err, keyAttribute: key}).Error("EXISTS failed")
		return false, err
	}
	return exists, nil
}

func (r *redImpl) Incrby(context ctx.Ctx, key string, val int) (int64, error) {
	res, err := redis.Int64(r.connDo(context, "INCRBY", key, val))
	if err != nil {
		context.WithFields(log.Fields{"err": err, keyAttribute: key}).Error("INCRBY failed")
		return 0, err
	}
	return res, nil
}

func (r *redImpl) TTL(context ctx.Ctx, key string) (int, error) {
	ttl, err := redis.Int(r.connDo(context, "TTL", key))
	if err != nil {
		context.WithFields(log.Fields{"err": err, keyAttribute: key}).Error("TTL failed")
		return 0, err
	}
	if ttl == retTTLNoKey {
		return 0, ErrNotFound
	}
	return ttl, nil
}
