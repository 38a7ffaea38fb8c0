package repository

import (
	"context"
	"slices"

	"crochetstudio/internal/domain"
)

var testimonials = []domain.Testimonial{
	{ID: 1, Name: "Sarah M.", Avatar: "/placeholder.svg", Rating: 5, Comment: "Absolutely in love with my custom bunny! The attention to detail is incredible. Worth every penny!"},
	{ID: 2, Name: "Emily K.", Avatar: "/placeholder.svg", Rating: 5, Comment: "Fast turnaround and beautiful work. My daughter adores her new crochet dragon!"},
	{ID: 3, Name: "Jessica T.", Avatar: "/placeholder.svg", Rating: 5, Comment: "The kawaii food set is so adorable! Perfect gift for my friend who loves all things cute."},
}

type TestimonialRepository struct{}

func NewTestimonialRepository() *TestimonialRepository {
	return &TestimonialRepository{}
}

func (r *TestimonialRepository) List(ctx context.Context) ([]domain.Testimonial, error) {
	return slices.Clone(testimonials), nil
}
