package news

import (
	"os"
	"testing"

	"github.com/stocksage/stocksage/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init("error", ""); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
