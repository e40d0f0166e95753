package analysis

import (
	"face-diff-bot/internal/domain/entity"
	"face-diff-bot/internal/domain/landmark"
)

var basePositions = map[landmark.Keypoint]entity.Point{
	landmark.LeftEyeLeft:    {X: 100, Y: 100},
	landmark.LeftEyeRight:   {X: 140, Y: 100},
	landmark.LeftEyeTop:     {X: 120, Y: 95},
	landmark.LeftEyeBottom:  {X: 120, Y: 105},
	landmark.RightEyeLeft:   {X: 180, Y: 100},
	landmark.RightEyeRight:  {X: 220, Y: 100},
	landmark.RightEyeTop:    {X: 200, Y: 95},
	landmark.RightEyeBottom: {X: 200, Y: 105},
	landmark.NoseLeft:       {X: 145, Y: 150},
	landmark.NoseRight:      {X: 175, Y: 150},
	landmark.NoseTip:        {X: 160, Y: 140},
	landmark.MouthLeft:      {X: 130, Y: 190},
	landmark.MouthRight:     {X: 190, Y: 190},
	landmark.FaceLeft:       {X: 60, Y: 130},
	landmark.FaceRight:      {X: 260, Y: 130},
	landmark.Forehead:       {X: 160, Y: 40},
	landmark.Chin:           {X: 160, Y: 240},
	landmark.JawLeft:        {X: 80, Y: 210},
	landmark.JawRight:       {X: 240, Y: 210},
}

// mesh строит полную сетку с базовой геометрией и заменёнными точками
func mesh(overrides map[landmark.Keypoint]entity.Point) entity.PointSet {
	points := make(entity.PointSet, landmark.MeshSize)
	for k, p := range basePositions {
		idx, _ := landmark.Index(k)
		points[idx] = p
	}
	for k, p := range overrides {
		idx, _ := landmark.Index(k)
		points[idx] = p
	}
	return points
}

func diffsOf(pairs ...any) entity.DifferenceSet {
	diffs := make(entity.DifferenceSet, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		diffs = append(diffs, entity.Difference{
			Feature:       pairs[i].(entity.Feature),
			PercentChange: pairs[i+1].(float64),
		})
	}
	return diffs
}
