// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dashboard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/beacon/internal/core/dashboard"
	"github.com/taibuivan/beacon/internal/core/visitor"
	"github.com/taibuivan/beacon/internal/platform/crud"
)

type fixedCount struct {
	total int
	err   error
}

func (count fixedCount) Count(context.Context, crud.Visibility) (int, error) {
	return count.total, count.err
}

func (count fixedCount) CountUnread(context.Context) (int, error) {
	return count.total, count.err
}

type fixedTotals visitor.Totals

func (totals fixedTotals) Totals(context.Context) (visitor.Totals, error) {
	return visitor.Totals(totals), nil
}

/*
TestOverview collects every counter.
*/
func TestOverview(t *testing.T) {
	service := dashboard.NewService(map[string]dashboard.Counter{
		"articles": fixedCount{total: 12},
		"programs": fixedCount{total: 4},
	}, fixedCount{total: 3}, fixedTotals{Today: 2, AllTime: 50})

	overview, err := service.Overview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"articles": 12, "programs": 4}, overview.Counts)
	assert.Equal(t, 3, overview.UnreadContacts)
	assert.Equal(t, 50, overview.Visitors.AllTime)
}

/*
TestOverview_Error fails the whole overview when one count fails.
*/
func TestOverview_Error(t *testing.T) {
	service := dashboard.NewService(map[string]dashboard.Counter{
		"articles": fixedCount{err: errors.New("boom")},
	}, fixedCount{}, fixedTotals{})

	_, err := service.Overview(context.Background())
	assert.Error(t, err)
}
