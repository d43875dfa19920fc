package main

import (
	"github.com/go-leo/composition/bicycle"
	"github.com/go-leo/composition/enumerable"
	"go.uber.org/zap"
)

func main() {
	logger := zap.NewExample()
	defer func() { _ = logger.Sync() }()

	chain := bicycle.NewPart(bicycle.Name("chain"), bicycle.Description("10-speed"), bicycle.NeedsSpare(false))
	roadTire := bicycle.NewPart(bicycle.Name("tire"), bicycle.Description("slim"))
	roadBikeParts := bicycle.NewParts(chain, roadTire)

	logger.Info("road bike parts", zap.Int("size", roadBikeParts.Size()))
	for part := range roadBikeParts.All() {
		logger.Info("part", zap.Stringer("part", part))
	}
	names := enumerable.Map(enumerable.Of(roadBikeParts.Spares()...), bicycle.Part.Name).ToSlice()
	logger.Info("spares", zap.Strings("names", names))
}
