package middleware

import (
	"bufio"
	"bytes"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/base/log"
	"github.com/tributary-xyz/goapi/domain/keys"
	"github.com/tributary-xyz/goapi/service/cache"
	compoundcache "github.com/tributary-xyz/goapi/service/cache/compoundCache"
	"github.com/tributary-xyz/goapi/service/cache/provider"
	"github.com/tributary-xyz/goapi/service/cache/provider/primitive"
	redisCache "github.com/tributary-xyz/goapi/service/cache/provider/redis"
	"github.com/tributary-xyz/goapi/service/redis"
)

const (
	httpCachePfx = "httpCache"

	// quote and history payloads are small, a modest local tier suffices
	localCacheSizeMB = 64
	localCacheMaxTTL = 10 * time.Second
)

var (
	localProvider provider.Provider
	redisProvider provider.Provider

	setupOnce = sync.Once{}
)

// SetupCache must run before any route registers CacheHttp
func SetupCache(redis redis.Service) {
	setupOnce.Do(func() {
		localProvider = primitive.NewPrimitive(httpCachePfx, localCacheSizeMB)
		redisProvider = redisCache.NewRedis(redis)
	})
}

// cachedResponse is the serialized form stored in the cache tiers
type cachedResponse struct {
	Value  []byte
	Header http.Header
}

// teeWriter duplicates the response body so it can be cached after the
// handler has written it
type teeWriter struct {
	statusCode int
	io.Writer
	http.ResponseWriter
}

func (w *teeWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *teeWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *teeWriter) Flush() {
	w.ResponseWriter.(http.Flusher).Flush()
}

func (w *teeWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return w.ResponseWriter.(http.Hijacker).Hijack()
}

// cacheKey hashes the URL with its query params in canonical order, so
// ?a=1&b=2 and ?b=2&a=1 share an entry. Canonicalization happens on a
// copy, the request URL is left untouched.
func cacheKey(pfx string, u *url.URL) string {
	cu := *u
	params := cu.Query()
	for _, param := range params {
		sort.Strings(param)
	}
	cu.RawQuery = params.Encode()

	return keys.RedisKey(pfx, keys.MD5(cu.String()))
}

// CacheHttp serves 2xx responses from a local-then-redis cache for ttl,
// keyed under pfx. Error responses are never cached.
func CacheHttp(pfx string, ttl time.Duration) echo.MiddlewareFunc {
	if localProvider == nil || redisProvider == nil {
		panic("need SetupCache before using CacheHttp")
	}

	localTTL := ttl
	if localTTL > localCacheMaxTTL {
		localTTL = localCacheMaxTTL
	}

	cacheService := compoundcache.NewCompoundCache([]cache.Service{
		cache.New(cache.ServiceConfig{
			Ttl:   localTTL,
			Pfx:   httpCachePfx,
			Cache: localProvider,
		}),
		cache.New(cache.ServiceConfig{
			Ttl:   ttl,
			Pfx:   httpCachePfx,
			Cache: redisProvider,
		}),
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Get("ctx").(ctx.Ctx)

			key := cacheKey(pfx, c.Request().URL)

			cached := cachedResponse{}
			err := cacheService.Get(ctx, key, &cached)
			if err == nil {
				for k, v := range cached.Header {
					c.Response().Header().Set(k, strings.Join(v, ","))
				}
				c.Response().WriteHeader(http.StatusOK)
				c.Response().Write(cached.Value)
				return nil
			}
			if err != cache.ErrNotFound {
				ctx.WithFields(log.Fields{
					"err": err,
					"key": key,
				}).Error("cacheService.Get failed")
			}

			body := new(bytes.Buffer)
			writer := &teeWriter{
				Writer:         io.MultiWriter(c.Response().Writer, body),
				ResponseWriter: c.Response().Writer,
			}
			c.Response().Writer = writer
			if err := next(c); err != nil {
				c.Error(err)
			}

			if writer.statusCode < 400 {
				err := cacheService.Set(ctx, key, cachedResponse{
					Value:  body.Bytes(),
					Header: writer.Header(),
				})
				if err != nil {
					ctx.WithFields(log.Fields{
						"err": err,
						"key": key,
					}).Error("cacheService.Set failed")
				}
			}

			return nil
		}
	}
}
