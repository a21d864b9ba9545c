package main

import (
	"context"
	"flag"
	"io"
	"os"
	"time"

	"github.com/productshowcase/catalog-service/internal/config"
	"github.com/productshowcase/catalog-service/internal/database"
	"github.com/productshowcase/catalog-service/internal/product/repository"
	"github.com/productshowcase/catalog-service/internal/seed"
	"github.com/productshowcase/catalog-service/internal/storage"
	"github.com/productshowcase/catalog-service/pkg/logger"
)

func main() {
	file := flag.String("file", "", "path to a JSON array of products")
	object := flag.String("object", "", "object key of a JSON fixture in the MinIO bucket (MINIO_* env)")
	drop := flag.Bool("drop", false, "delete existing products before inserting")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)

	if (*file == "") == (*object == "") {
		logger.Fatalf("exactly one of -file or -object is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	src, err := openSource(ctx, *file, *object)
	if err != nil {
		logger.Fatalf("open fixtures: %v", err)
	}
	products, err := seed.Decode(src)
	src.Close()
	if err != nil {
		logger.Fatalf("%v", err)
	}

	client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		logger.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	repo := repository.NewMongoRepo(client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection))
	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.Warnf("%v", err)
	}
	n, err := seed.Load(ctx, repo, products, *drop)
	if err != nil {
		logger.Errorf("seed failed: %v", err)
		os.Exit(1)
	}
	logger.Infof("inserted %d products into %s.%s", n, cfg.MongoDB.Database, cfg.MongoDB.Collection)
}

func openSource(ctx context.Context, file, object string) (io.ReadCloser, error) {
	if file != "" {
		return os.Open(file)
	}
	st, err := storage.NewMinIOStorage(storage.LoadMinIOConfig())
	if err != nil {
		return nil, err
	}
	return st.DownloadFile(ctx, object)
}
