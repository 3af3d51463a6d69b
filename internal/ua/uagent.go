package ua

import (
	"math/rand"
	"sync"

	"github.com/agux/rua/internal/conf"
	"github.com/pkg/errors"
)

var (
	agentPool    []string
	agentBinding = make(map[string]string)
	picker       *rand.Rand
	uaLock       = sync.RWMutex{}
)

// PickUserAgent picks a user agent string from the pool randomly.
// if the pool is not populated, it will be generated first using
// the configured pins and pool size.
func PickUserAgent() (ua string, e error) {
	uaLock.Lock()
	defer uaLock.Unlock()

	if e = populate(); e != nil {
		return
	}
	return agentPool[picker.Intn(len(agentPool))], nil
}

// GetUserAgent returns the user agent bound to key, binding a freshly
// picked one on first use.
func GetUserAgent(key string) (ua string, e error) {
	uaLock.Lock()
	defer uaLock.Unlock()

	if ua, ok := agentBinding[key]; ok {
		return ua, nil
	}
	if e = populate(); e != nil {
		return
	}
	ua = agentPool[picker.Intn(len(agentPool))]
	agentBinding[key] = ua
	log.Debugf("user agent bound to %s: %s", key, ua)
	return
}

// Reset drops the pool and every binding.
func Reset() {
	uaLock.Lock()
	defer uaLock.Unlock()

	agentPool = nil
	agentBinding = make(map[string]string)
	picker = nil
}

func populate() (e error) {
	if len(agentPool) > 0 {
		return
	}
	log.Info("generating user agent pool...")
	src := newSource()
	var agents []string
	if agents, e = generate(src, conf.Args.Pool.Size); e != nil {
		log.Warn(e)
		return
	}
	if len(agents) == 0 {
		e = errors.New("user agent strings are not available at this moment")
		log.Warn(e)
		return
	}
	agentPool, picker = agents, src
	log.Infof("successfully generated %d user agents.", len(agentPool))
	return
}
