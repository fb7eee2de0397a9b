// Copyright 2024 barakatmart
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sngenerator

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
)

// Generator 生成订单序列号
// 序列号 = 买家ID后四位 + snowflake ID 的 base36 编码
// 后四位方便客服按买家检索，snowflake 部分保证全局唯一且趋势递增
type Generator struct {
	node *snowflake.Node
}

func NewGenerator(nodeID int64) (*Generator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("初始化snowflake节点失败: %w", err)
	}
	return &Generator{node: node}, nil
}

func (g *Generator) Generate(buyerID int64) (string, error) {
	id := g.node.Generate()
	return fmt.Sprintf("%04d%s", buyerID%10000, strings.ToUpper(id.Base36())), nil
}
