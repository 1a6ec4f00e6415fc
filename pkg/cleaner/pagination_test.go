// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cleaner

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("pagination", func() {
	Describe("pages", func() {
		It("walks all pages including uneven ones", func() {
			data := [][]string{{"a", "b"}, {"c"}, {"d", "e", "f"}}
			list := func(ctx context.Context, page int) ([]string, int, error) {
				return data[page-1], len(data), nil
			}

			out, err := collect(pages(context.Background(), list))
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(Equal([]string{"a", "b", "c", "d", "e", "f"}))
		})

		It("handles an empty collection", func() {
			list := func(ctx context.Context, page int) ([]string, int, error) {
				return nil, 0, nil
			}

			out, err := collect(pages(context.Background(), list))
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(BeEmpty())
		})

		It("propagates a mid-walk listing error", func() {
			list := func(ctx context.Context, page int) ([]string, int, error) {
				if page == 2 {
					return nil, 0, errors.New("page 2 unavailable")
				}
				return []string{"a"}, 3, nil
			}

			_, err := collect(pages(context.Background(), list))
			Expect(err).To(MatchError(ContainSubstring("page 2 unavailable")))
		})

		It("restarts from the first page on every walk", func() {
			var calls []int
			list := func(ctx context.Context, page int) ([]string, int, error) {
				calls = append(calls, page)
				return []string{"x"}, 2, nil
			}

			seq := pages(context.Background(), list)
			for range 2 {
				out, err := collect(seq)
				Expect(err).ToNot(HaveOccurred())
				Expect(out).To(Equal([]string{"x", "x"}))
			}
			Expect(calls).To(Equal([]int{1, 2, 1, 2}))
		})

		It("stops early when the consumer does", func() {
			var calls int
			list := func(ctx context.Context, page int) ([]string, int, error) {
				calls++
				return []string{"a", "b"}, 5, nil
			}

			for item, err := range pages(context.Background(), list) {
				Expect(err).ToNot(HaveOccurred())
				Expect(item).To(Equal("a"))
				break
			}
			Expect(calls).To(Equal(1))
		})
	})

	Describe("indexedPages", func() {
		It("strides by the server-reported page size", func() {
			var starts []int
			list := func(ctx context.Context, startIndex int) ([]string, int, int, error) {
				starts = append(starts, startIndex)
				switch startIndex {
				case 1:
					return []string{"a", "b"}, 2, 5, nil
				case 3:
					return []string{"c", "d"}, 2, 5, nil
				default:
					return []string{"e"}, 2, 5, nil
				}
			}

			out, err := collect(indexedPages(context.Background(), list))
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(Equal([]string{"a", "b", "c", "d", "e"}))
			Expect(starts).To(Equal([]int{1, 3, 5}))
		})

		It("stops on an empty result instead of looping", func() {
			list := func(ctx context.Context, startIndex int) ([]string, int, int, error) {
				return nil, 100, 50, nil
			}

			out, err := collect(indexedPages(context.Background(), list))
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(BeEmpty())
		})

		It("propagates a listing error", func() {
			list := func(ctx context.Context, startIndex int) ([]string, int, int, error) {
				return nil, 0, 0, errors.New("scim listing failed")
			}

			_, err := collect(indexedPages(context.Background(), list))
			Expect(err).To(MatchError(ContainSubstring("scim listing failed")))
		})
	})

	Describe("items", func() {
		It("yields the listing once", func() {
			out, err := collect(items(func() ([]string, error) { return []string{"a", "b"}, nil }))
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(Equal([]string{"a", "b"}))
		})

		It("propagates the listing error", func() {
			_, err := collect(items(func() ([]string, error) { return nil, errors.New("boom") }))
			Expect(err).To(MatchError(ContainSubstring("boom")))
		})
	})
})
