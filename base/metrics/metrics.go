/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn
*/
package metrics

import (
	"github.com/spf13/viper"

	"github.com/tributary-xyz/goapi/base/env"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New creates a metrics client with package name as prefix
func New(pkgName string) Service {
	ddTags := []string{
		// using host removes all tags associated with host
		// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
		"host:",
		"pod:" + env.PodName(),
		"env:" + viper.GetString("env_name"),
		"app:" + viper.GetString("app_name"),
	}

	return &Metrics{
		pkgName: pkgName,
		datadog: DDMetrics{ddTags: ddTags},
	}
}

// Metrics bumps everything onto the datadog client with a pkgName prefix
type Metrics struct {
	pkgName string
	datadog DDMetrics
}

func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	mt.datadog.BumpAvg(mt.pkgName+"."+key, val, ddRate, tags...)
}

func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	mt.datadog.BumpSum(mt.pkgName+"."+key, val, ddRate, tags...)
}

func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	mt.datadog.BumpHistogram(mt.pkgName+"."+key, val, ddRate, tags...)
}

func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return mt.datadog.BumpTime(mt.pkgName+"."+key, ddRate, tags...)
}
