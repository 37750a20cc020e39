package main

import (
	"encoding/json"
	"errors"

	"github.com/tuannh982/bijection/utils/collections"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	log.SetLevel(log.DebugLevel)
	logger := log.WithFields(log.Fields{"map": "country-codes"})

	codes, err := collections.FromPairs([]collections.Pair[string, int]{
		{Key: "US", Value: 1},
		{Key: "FR", Value: 33},
		{Key: "VN", Value: 84},
	}, collections.WithLogger(logger))
	if err != nil {
		logger.Fatal(err)
	}

	if code, ok := codes.GetValue("VN"); ok {
		logger.Infof("VN -> %d", code)
	}
	if country, ok := codes.GetKey(33); ok {
		logger.Infof("33 -> %s", country)
	}

	if err := codes.Set("CA", 1); errors.Is(err, collections.ErrInvariantViolation) {
		logger.Warnf("refused: %v", err)
	}
	codes.MustSet("US", 11)
	if _, ok := codes.DeleteValue(84); ok {
		logger.Info("dropped VN")
	}

	data, err := json.Marshal(codes)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infof("%s (%s)", codes, data)

	byCode := collections.Invert(codes)
	logger.Infof("inverted: %s", byCode)

	codes.Clear(true)
	logger.Infof("size after clear: %d", codes.Size())
}
