package redisclient

import (
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/tributary-xyz/goapi/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond
)

// RedisParam is the optional param for redis connection
type RedisParam struct {
	PoolMultiplier float64
	Retry          bool
}

// MustConnectRedis connects to one redis uri
// NOTE This function panics if the connection fails.
func MustConnectRedis(uri, password string, param ...RedisParam) *redis.Pool {
	p, err := ConnectRedis(uri, password, param...)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": uri, "err": err}).Panic("fail to dial Redis")
	}
	return p
}

// ConnectRedis connects to one redis uri
func ConnectRedis(uri, password string, param ...RedisParam) (*redis.Pool, error) {
	maxIdle := 200
	maxActive := 1024
	if len(param) > 0 {
		cpu := float64(runtime.NumCPU())
		// allowing 25% idle connection
		maxIdle = int(cpu * param[0].PoolMultiplier / 4)
		maxActive = int(cpu * param[0].PoolMultiplier)
	}

	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if password != "" {
		opts = append(opts, redis.DialPassword(password))
	}
	p := &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", uri, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			// No need to test if it's been recycled less than 1 sec.
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	c, err := p.Dial()
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": uri, "err": err}).Error("fail to dial Redis")
		return nil, err
	}
	defer c.Close()

	if err := p.TestOnBorrow(c, time.Now()); err != nil {
		log.Log().WithFields(log.Fields{"redisURI": uri, "err": err}).Error("fail to TestOnBorrow Redis")
		return nil, err
	}

	log.Log().WithField("redisURI", uri).Info("redis connected")

	return p, nil
}
