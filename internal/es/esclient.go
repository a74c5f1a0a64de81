package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/morcel/product-catalog/internal/config"
	"github.com/morcel/product-catalog/internal/models"
)

func NewClient(cfg *config.Config) (*elasticsearch.Client, error) {
	esCfg := elasticsearch.Config{
		Addresses: []string{cfg.ES_URL},
		Username:  cfg.ES_USER,
		Password:  cfg.ES_PASSWORD,
	}

	client, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("creating elasticsearch client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("elasticsearch info: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("elasticsearch error: %s: %s", res.Status(), body)
	}

	return client, nil
}

// ProductIndex mirrors catalog products into an elasticsearch index for
// external consumers. The HTTP search endpoint stays on the store.
type ProductIndex struct {
	Client *elasticsearch.Client
	Index  string
}

func (i *ProductIndex) IndexProduct(ctx context.Context, product *models.Product) error {
	body, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("es: json.Marshal failed: %w", err)
	}

	res, err := i.Client.Index(i.Index, bytes.NewReader(body),
		i.Client.Index.WithDocumentID(docID(product.ID)),
		i.Client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("es: index failed: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("es: index failed: %s", res.Status())
	}
	return nil
}

func (i *ProductIndex) DeleteProduct(ctx context.Context, id uint) error {
	res, err := i.Client.Delete(i.Index, docID(id),
		i.Client.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("es: delete failed: %w", err)
	}
	defer res.Body.Close()
	// a document that was never indexed is fine to "delete"
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("es: delete failed: %s", res.Status())
	}
	return nil
}

func docID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
