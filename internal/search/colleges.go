package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/elastic/go-elasticsearch/v9/esapi"

	"github.com/Skotchmaster/campus_admin/internal/models"
)

// CollegeIndex mirrors colleges into an Elasticsearch index for fuzzy lookup.
type CollegeIndex struct {
	ES    *elasticsearch.Client
	Index string
}

type collegeDoc struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`
}

func (i *CollegeIndex) Put(ctx context.Context, c models.College) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(collegeDoc(c)); err != nil {
		return fmt.Errorf("encode college: %w", err)
	}

	res, err := i.ES.Index(i.Index, &buf,
		i.ES.Index.WithContext(ctx),
		i.ES.Index.WithDocumentID(strconv.FormatUint(uint64(c.ID), 10)),
	)
	if err != nil {
		return fmt.Errorf("index college: %w", err)
	}
	defer res.Body.Close()
	return responseError("index college", res)
}

func (i *CollegeIndex) Remove(ctx context.Context, id uint) error {
	res, err := i.ES.Delete(i.Index, strconv.FormatUint(uint64(id), 10),
		i.ES.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("delete college: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusNotFound {
		return nil
	}
	return responseError("delete college", res)
}

func (i *CollegeIndex) Search(ctx context.Context, query string, from, size int) (int64, []models.College, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"name^2", "address"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("encode query: %w", err)
	}

	res, err := i.ES.Search(
		i.ES.Search.WithContext(ctx),
		i.ES.Search.WithIndex(i.Index),
		i.ES.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search colleges: %w", err)
	}
	defer res.Body.Close()
	if err := responseError("search colleges", res); err != nil {
		return 0, nil, err
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source collegeDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, fmt.Errorf("decode search response: %w", err)
	}

	out := make([]models.College, len(r.Hits.Hits))
	for n, hit := range r.Hits.Hits {
		out[n] = models.College(hit.Source)
	}
	return r.Hits.Total.Value, out, nil
}

func responseError(op string, res *esapi.Response) error {
	if !res.IsError() {
		return nil
	}
	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("%s: %s: %s", op, res.Status(), body)
}
