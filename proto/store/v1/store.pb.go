// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: store/v1/store.proto

package storev1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Product struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	ProductId       string                 `protobuf:"bytes,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	Name            string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Slug            string                 `protobuf:"bytes,3,opt,name=slug,proto3" json:"slug,omitempty"`
	Category        string                 `protobuf:"bytes,4,opt,name=category,proto3" json:"category,omitempty"`
	Price           int64                  `protobuf:"varint,5,opt,name=price,proto3" json:"price,omitempty"`
	Price_3Items    *int64                 `protobuf:"varint,6,opt,name=price_3_items,json=price3Items,proto3,oneof" json:"price_3_items,omitempty"`
	Price_5Items    *int64                 `protobuf:"varint,7,opt,name=price_5_items,json=price5Items,proto3,oneof" json:"price_5_items,omitempty"`
	Stock           int64                  `protobuf:"varint,8,opt,name=stock,proto3" json:"stock,omitempty"`
	LastPriceUpdate *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=last_price_update,json=lastPriceUpdate,proto3,oneof" json:"last_price_update,omitempty"`
	CreatedAt       *timestamppb.Timestamp `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       *timestamppb.Timestamp `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Product) Reset() {
	*x = Product{}
	mi := &file_store_v1_store_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Product) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Product) ProtoMessage() {}

func (x *Product) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Product.ProtoReflect.Descriptor instead.
func (*Product) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{0}
}

func (x *Product) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *Product) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Product) GetSlug() string {
	if x != nil {
		return x.Slug
	}
	return ""
}

func (x *Product) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Product) GetPrice() int64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *Product) GetPrice_3Items() int64 {
	if x != nil && x.Price_3Items != nil {
		return *x.Price_3Items
	}
	return 0
}

func (x *Product) GetPrice_5Items() int64 {
	if x != nil && x.Price_5Items != nil {
		return *x.Price_5Items
	}
	return 0
}

func (x *Product) GetStock() int64 {
	if x != nil {
		return x.Stock
	}
	return 0
}

func (x *Product) GetLastPriceUpdate() *timestamppb.Timestamp {
	if x != nil {
		return x.LastPriceUpdate
	}
	return nil
}

func (x *Product) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Product) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type CreateProductRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Category      string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	Price         int64                  `protobuf:"varint,3,opt,name=price,proto3" json:"price,omitempty"`
	Price_3Items  *int64                 `protobuf:"varint,4,opt,name=price_3_items,json=price3Items,proto3,oneof" json:"price_3_items,omitempty"`
	Price_5Items  *int64                 `protobuf:"varint,5,opt,name=price_5_items,json=price5Items,proto3,oneof" json:"price_5_items,omitempty"`
	Stock         int64                  `protobuf:"varint,6,opt,name=stock,proto3" json:"stock,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProductRequest) Reset() {
	*x = CreateProductRequest{}
	mi := &file_store_v1_store_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProductRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProductRequest) ProtoMessage() {}

func (x *CreateProductRequest) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProductRequest.ProtoReflect.Descriptor instead.
func (*CreateProductRequest) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{1}
}

func (x *CreateProductRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateProductRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *CreateProductRequest) GetPrice() int64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *CreateProductRequest) GetPrice_3Items() int64 {
	if x != nil && x.Price_3Items != nil {
		return *x.Price_3Items
	}
	return 0
}

func (x *CreateProductRequest) GetPrice_5Items() int64 {
	if x != nil && x.Price_5Items != nil {
		return *x.Price_5Items
	}
	return 0
}

func (x *CreateProductRequest) GetStock() int64 {
	if x != nil {
		return x.Stock
	}
	return 0
}

type CreateProductReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProductId     string                 `protobuf:"bytes,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProductReply) Reset() {
	*x = CreateProductReply{}
	mi := &file_store_v1_store_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProductReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProductReply) ProtoMessage() {}

func (x *CreateProductReply) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProductReply.ProtoReflect.Descriptor instead.
func (*CreateProductReply) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{2}
}

func (x *CreateProductReply) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

type UpdateProductRequest struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	ProductId    string                 `protobuf:"bytes,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	Name         *string                `protobuf:"bytes,2,opt,name=name,proto3,oneof" json:"name,omitempty"`
	Category     *string                `protobuf:"bytes,3,opt,name=category,proto3,oneof" json:"category,omitempty"`
	Price        *int64                 `protobuf:"varint,4,opt,name=price,proto3,oneof" json:"price,omitempty"`
	Price_3Items *int64                 `protobuf:"varint,5,opt,name=price_3_items,json=price3Items,proto3,oneof" json:"price_3_items,omitempty"`
	Price_5Items *int64                 `protobuf:"varint,6,opt,name=price_5_items,json=price5Items,proto3,oneof" json:"price_5_items,omitempty"`
	Stock        *int64                 `protobuf:"varint,7,opt,name=stock,proto3,oneof" json:"stock,omitempty"`
	// Set when the tier price fields carry meaning; clears absent tiers.
	SetTierPrices bool `protobuf:"varint,8,opt,name=set_tier_prices,json=setTierPrices,proto3" json:"set_tier_prices,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateProductRequest) Reset() {
	*x = UpdateProductRequest{}
	mi := &file_store_v1_store_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateProductRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateProductRequest) ProtoMessage() {}

func (x *UpdateProductRequest) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateProductRequest.ProtoReflect.Descriptor instead.
func (*UpdateProductRequest) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{3}
}

func (x *UpdateProductRequest) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *UpdateProductRequest) GetName() string {
	if x != nil && x.Name != nil {
		return *x.Name
	}
	return ""
}

func (x *UpdateProductRequest) GetCategory() string {
	if x != nil && x.Category != nil {
		return *x.Category
	}
	return ""
}

func (x *UpdateProductRequest) GetPrice() int64 {
	if x != nil && x.Price != nil {
		return *x.Price
	}
	return 0
}

func (x *UpdateProductRequest) GetPrice_3Items() int64 {
	if x != nil && x.Price_3Items != nil {
		return *x.Price_3Items
	}
	return 0
}

func (x *UpdateProductRequest) GetPrice_5Items() int64 {
	if x != nil && x.Price_5Items != nil {
		return *x.Price_5Items
	}
	return 0
}

func (x *UpdateProductRequest) GetStock() int64 {
	if x != nil && x.Stock != nil {
		return *x.Stock
	}
	return 0
}

func (x *UpdateProductRequest) GetSetTierPrices() bool {
	if x != nil {
		return x.SetTierPrices
	}
	return false
}

type UpdateProductReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateProductReply) Reset() {
	*x = UpdateProductReply{}
	mi := &file_store_v1_store_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateProductReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateProductReply) ProtoMessage() {}

func (x *UpdateProductReply) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateProductReply.ProtoReflect.Descriptor instead.
func (*UpdateProductReply) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{4}
}

type BulkUpdatePricesRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Percentage change applied to every product, e.g. 5 means +5%.
	// Values at or below -100 are rejected.
	Percentage    float64 `protobuf:"fixed64,1,opt,name=percentage,proto3" json:"percentage,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BulkUpdatePricesRequest) Reset() {
	*x = BulkUpdatePricesRequest{}
	mi := &file_store_v1_store_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BulkUpdatePricesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BulkUpdatePricesRequest) ProtoMessage() {}

func (x *BulkUpdatePricesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BulkUpdatePricesRequest.ProtoReflect.Descriptor instead.
func (*BulkUpdatePricesRequest) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{5}
}

func (x *BulkUpdatePricesRequest) GetPercentage() float64 {
	if x != nil {
		return x.Percentage
	}
	return 0
}

type BulkUpdatePricesReply struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	ProductsUpdated int64                  `protobuf:"varint,1,opt,name=products_updated,json=productsUpdated,proto3" json:"products_updated,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *BulkUpdatePricesReply) Reset() {
	*x = BulkUpdatePricesReply{}
	mi := &file_store_v1_store_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BulkUpdatePricesReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BulkUpdatePricesReply) ProtoMessage() {}

func (x *BulkUpdatePricesReply) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BulkUpdatePricesReply.ProtoReflect.Descriptor instead.
func (*BulkUpdatePricesReply) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{6}
}

func (x *BulkUpdatePricesReply) GetProductsUpdated() int64 {
	if x != nil {
		return x.ProductsUpdated
	}
	return 0
}

type GetProductRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Lookup by ID or by URL slug.
	//
	// Types that are valid to be assigned to Key:
	//
	//	*GetProductRequest_ProductId
	//	*GetProductRequest_Slug
	Key           isGetProductRequest_Key `protobuf_oneof:"key"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProductRequest) Reset() {
	*x = GetProductRequest{}
	mi := &file_store_v1_store_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProductRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProductRequest) ProtoMessage() {}

func (x *GetProductRequest) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProductRequest.ProtoReflect.Descriptor instead.
func (*GetProductRequest) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{7}
}

func (x *GetProductRequest) GetKey() isGetProductRequest_Key {
	if x != nil {
		return x.Key
	}
	return nil
}

func (x *GetProductRequest) GetProductId() string {
	if x != nil {
		if x, ok := x.Key.(*GetProductRequest_ProductId); ok {
			return x.ProductId
		}
	}
	return ""
}

func (x *GetProductRequest) GetSlug() string {
	if x != nil {
		if x, ok := x.Key.(*GetProductRequest_Slug); ok {
			return x.Slug
		}
	}
	return ""
}

type isGetProductRequest_Key interface {
	isGetProductRequest_Key()
}

type GetProductRequest_ProductId struct {
	ProductId string `protobuf:"bytes,1,opt,name=product_id,json=productId,proto3,oneof"`
}

type GetProductRequest_Slug struct {
	Slug string `protobuf:"bytes,2,opt,name=slug,proto3,oneof"`
}

func (*GetProductRequest_ProductId) isGetProductRequest_Key() {}

func (*GetProductRequest_Slug) isGetProductRequest_Key() {}

type GetProductReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Product       *Product               `protobuf:"bytes,1,opt,name=product,proto3" json:"product,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProductReply) Reset() {
	*x = GetProductReply{}
	mi := &file_store_v1_store_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProductReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProductReply) ProtoMessage() {}

func (x *GetProductReply) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProductReply.ProtoReflect.Descriptor instead.
func (*GetProductReply) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{8}
}

func (x *GetProductReply) GetProduct() *Product {
	if x != nil {
		return x.Product
	}
	return nil
}

type ListProductsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	NamePrefix    string                 `protobuf:"bytes,2,opt,name=name_prefix,json=namePrefix,proto3" json:"name_prefix,omitempty"`
	PageSize      int64                  `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	Offset        int64                  `protobuf:"varint,4,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProductsRequest) Reset() {
	*x = ListProductsRequest{}
	mi := &file_store_v1_store_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProductsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProductsRequest) ProtoMessage() {}

func (x *ListProductsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProductsRequest.ProtoReflect.Descriptor instead.
func (*ListProductsRequest) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{9}
}

func (x *ListProductsRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ListProductsRequest) GetNamePrefix() string {
	if x != nil {
		return x.NamePrefix
	}
	return ""
}

func (x *ListProductsRequest) GetPageSize() int64 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListProductsRequest) GetOffset() int64 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListProductsReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Products      []*Product             `protobuf:"bytes,1,rep,name=products,proto3" json:"products,omitempty"`
	TotalCount    int64                  `protobuf:"varint,2,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProductsReply) Reset() {
	*x = ListProductsReply{}
	mi := &file_store_v1_store_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProductsReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProductsReply) ProtoMessage() {}

func (x *ListProductsReply) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProductsReply.ProtoReflect.Descriptor instead.
func (*ListProductsReply) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{10}
}

func (x *ListProductsReply) GetProducts() []*Product {
	if x != nil {
		return x.Products
	}
	return nil
}

func (x *ListProductsReply) GetTotalCount() int64 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

type AddCartItemRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	ProductId     string                 `protobuf:"bytes,2,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	Quantity      int64                  `protobuf:"varint,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddCartItemRequest) Reset() {
	*x = AddCartItemRequest{}
	mi := &file_store_v1_store_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddCartItemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddCartItemRequest) ProtoMessage() {}

func (x *AddCartItemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddCartItemRequest.ProtoReflect.Descriptor instead.
func (*AddCartItemRequest) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{11}
}

func (x *AddCartItemRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *AddCartItemRequest) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *AddCartItemRequest) GetQuantity() int64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

type AddCartItemReply struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Line quantity after the add, accumulated over repeat adds.
	Quantity      int64 `protobuf:"varint,1,opt,name=quantity,proto3" json:"quantity,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddCartItemReply) Reset() {
	*x = AddCartItemReply{}
	mi := &file_store_v1_store_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddCartItemReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddCartItemReply) ProtoMessage() {}

func (x *AddCartItemReply) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddCartItemReply.ProtoReflect.Descriptor instead.
func (*AddCartItemReply) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{12}
}

func (x *AddCartItemReply) GetQuantity() int64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

type UpdateCartItemRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	ProductId     string                 `protobuf:"bytes,2,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	Quantity      int64                  `protobuf:"varint,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateCartItemRequest) Reset() {
	*x = UpdateCartItemRequest{}
	mi := &file_store_v1_store_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateCartItemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateCartItemRequest) ProtoMessage() {}

func (x *UpdateCartItemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateCartItemRequest.ProtoReflect.Descriptor instead.
func (*UpdateCartItemRequest) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{13}
}

func (x *UpdateCartItemRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UpdateCartItemRequest) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *UpdateCartItemRequest) GetQuantity() int64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

type UpdateCartItemReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateCartItemReply) Reset() {
	*x = UpdateCartItemReply{}
	mi := &file_store_v1_store_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateCartItemReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateCartItemReply) ProtoMessage() {}

func (x *UpdateCartItemReply) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateCartItemReply.ProtoReflect.Descriptor instead.
func (*UpdateCartItemReply) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{14}
}

type RemoveCartItemRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	ProductId     string                 `protobuf:"bytes,2,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveCartItemRequest) Reset() {
	*x = RemoveCartItemRequest{}
	mi := &file_store_v1_store_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveCartItemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveCartItemRequest) ProtoMessage() {}

func (x *RemoveCartItemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveCartItemRequest.ProtoReflect.Descriptor instead.
func (*RemoveCartItemRequest) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{15}
}

func (x *RemoveCartItemRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *RemoveCartItemRequest) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

type RemoveCartItemReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveCartItemReply) Reset() {
	*x = RemoveCartItemReply{}
	mi := &file_store_v1_store_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveCartItemReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveCartItemReply) ProtoMessage() {}

func (x *RemoveCartItemReply) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveCartItemReply.ProtoReflect.Descriptor instead.
func (*RemoveCartItemReply) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{16}
}

type GetCartRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCartRequest) Reset() {
	*x = GetCartRequest{}
	mi := &file_store_v1_store_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCartRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCartRequest) ProtoMessage() {}

func (x *GetCartRequest) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCartRequest.ProtoReflect.Descriptor instead.
func (*GetCartRequest) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{17}
}

func (x *GetCartRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type CartLine struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProductId     string                 `protobuf:"bytes,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Slug          string                 `protobuf:"bytes,3,opt,name=slug,proto3" json:"slug,omitempty"`
	Quantity      int64                  `protobuf:"varint,4,opt,name=quantity,proto3" json:"quantity,omitempty"`
	UnitPrice     int64                  `protobuf:"varint,5,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	Subtotal      int64                  `protobuf:"varint,6,opt,name=subtotal,proto3" json:"subtotal,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CartLine) Reset() {
	*x = CartLine{}
	mi := &file_store_v1_store_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CartLine) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CartLine) ProtoMessage() {}

func (x *CartLine) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CartLine.ProtoReflect.Descriptor instead.
func (*CartLine) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{18}
}

func (x *CartLine) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *CartLine) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CartLine) GetSlug() string {
	if x != nil {
		return x.Slug
	}
	return ""
}

func (x *CartLine) GetQuantity() int64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *CartLine) GetUnitPrice() int64 {
	if x != nil {
		return x.UnitPrice
	}
	return 0
}

func (x *CartLine) GetSubtotal() int64 {
	if x != nil {
		return x.Subtotal
	}
	return 0
}

type GetCartReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Lines         []*CartLine            `protobuf:"bytes,1,rep,name=lines,proto3" json:"lines,omitempty"`
	Total         int64                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCartReply) Reset() {
	*x = GetCartReply{}
	mi := &file_store_v1_store_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCartReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCartReply) ProtoMessage() {}

func (x *GetCartReply) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCartReply.ProtoReflect.Descriptor instead.
func (*GetCartReply) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{19}
}

func (x *GetCartReply) GetLines() []*CartLine {
	if x != nil {
		return x.Lines
	}
	return nil
}

func (x *GetCartReply) GetTotal() int64 {
	if x != nil {
		return x.Total
	}
	return 0
}

type PlaceOrderRequest struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	UserId string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	// Courier code: jne, tiki or sicepat.
	Courier       string `protobuf:"bytes,2,opt,name=courier,proto3" json:"courier,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlaceOrderRequest) Reset() {
	*x = PlaceOrderRequest{}
	mi := &file_store_v1_store_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlaceOrderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlaceOrderRequest) ProtoMessage() {}

func (x *PlaceOrderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlaceOrderRequest.ProtoReflect.Descriptor instead.
func (*PlaceOrderRequest) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{20}
}

func (x *PlaceOrderRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *PlaceOrderRequest) GetCourier() string {
	if x != nil {
		return x.Courier
	}
	return ""
}

type PlaceOrderReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	OrderNumber   string                 `protobuf:"bytes,2,opt,name=order_number,json=orderNumber,proto3" json:"order_number,omitempty"`
	TotalPrice    int64                  `protobuf:"varint,3,opt,name=total_price,json=totalPrice,proto3" json:"total_price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlaceOrderReply) Reset() {
	*x = PlaceOrderReply{}
	mi := &file_store_v1_store_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlaceOrderReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlaceOrderReply) ProtoMessage() {}

func (x *PlaceOrderReply) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlaceOrderReply.ProtoReflect.Descriptor instead.
func (*PlaceOrderReply) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{21}
}

func (x *PlaceOrderReply) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *PlaceOrderReply) GetOrderNumber() string {
	if x != nil {
		return x.OrderNumber
	}
	return ""
}

func (x *PlaceOrderReply) GetTotalPrice() int64 {
	if x != nil {
		return x.TotalPrice
	}
	return 0
}

type OrderItem struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	ProductId       string                 `protobuf:"bytes,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	Quantity        int64                  `protobuf:"varint,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
	PriceAtPurchase int64                  `protobuf:"varint,3,opt,name=price_at_purchase,json=priceAtPurchase,proto3" json:"price_at_purchase,omitempty"`
	Subtotal        int64                  `protobuf:"varint,4,opt,name=subtotal,proto3" json:"subtotal,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *OrderItem) Reset() {
	*x = OrderItem{}
	mi := &file_store_v1_store_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OrderItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OrderItem) ProtoMessage() {}

func (x *OrderItem) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OrderItem.ProtoReflect.Descriptor instead.
func (*OrderItem) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{22}
}

func (x *OrderItem) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *OrderItem) GetQuantity() int64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *OrderItem) GetPriceAtPurchase() int64 {
	if x != nil {
		return x.PriceAtPurchase
	}
	return 0
}

func (x *OrderItem) GetSubtotal() int64 {
	if x != nil {
		return x.Subtotal
	}
	return 0
}

type Order struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	OrderNumber   string                 `protobuf:"bytes,3,opt,name=order_number,json=orderNumber,proto3" json:"order_number,omitempty"`
	Courier       string                 `protobuf:"bytes,4,opt,name=courier,proto3" json:"courier,omitempty"`
	ShippingCost  int64                  `protobuf:"varint,5,opt,name=shipping_cost,json=shippingCost,proto3" json:"shipping_cost,omitempty"`
	TotalPrice    int64                  `protobuf:"varint,6,opt,name=total_price,json=totalPrice,proto3" json:"total_price,omitempty"`
	Status        string                 `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`
	Items         []*OrderItem           `protobuf:"bytes,8,rep,name=items,proto3" json:"items,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Order) Reset() {
	*x = Order{}
	mi := &file_store_v1_store_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Order) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Order) ProtoMessage() {}

func (x *Order) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Order.ProtoReflect.Descriptor instead.
func (*Order) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{23}
}

func (x *Order) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *Order) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Order) GetOrderNumber() string {
	if x != nil {
		return x.OrderNumber
	}
	return ""
}

func (x *Order) GetCourier() string {
	if x != nil {
		return x.Courier
	}
	return ""
}

func (x *Order) GetShippingCost() int64 {
	if x != nil {
		return x.ShippingCost
	}
	return 0
}

func (x *Order) GetTotalPrice() int64 {
	if x != nil {
		return x.TotalPrice
	}
	return 0
}

func (x *Order) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Order) GetItems() []*OrderItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *Order) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type GetOrderRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	OrderId       string                 `protobuf:"bytes,2,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOrderRequest) Reset() {
	*x = GetOrderRequest{}
	mi := &file_store_v1_store_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOrderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOrderRequest) ProtoMessage() {}

func (x *GetOrderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOrderRequest.ProtoReflect.Descriptor instead.
func (*GetOrderRequest) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{24}
}

func (x *GetOrderRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *GetOrderRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

type GetOrderReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Order         *Order                 `protobuf:"bytes,1,opt,name=order,proto3" json:"order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOrderReply) Reset() {
	*x = GetOrderReply{}
	mi := &file_store_v1_store_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOrderReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOrderReply) ProtoMessage() {}

func (x *GetOrderReply) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOrderReply.ProtoReflect.Descriptor instead.
func (*GetOrderReply) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{25}
}

func (x *GetOrderReply) GetOrder() *Order {
	if x != nil {
		return x.Order
	}
	return nil
}

type ListOrdersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	PageSize      int64                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	Offset        int64                  `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListOrdersRequest) Reset() {
	*x = ListOrdersRequest{}
	mi := &file_store_v1_store_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListOrdersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListOrdersRequest) ProtoMessage() {}

func (x *ListOrdersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListOrdersRequest.ProtoReflect.Descriptor instead.
func (*ListOrdersRequest) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{26}
}

func (x *ListOrdersRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ListOrdersRequest) GetPageSize() int64 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListOrdersRequest) GetOffset() int64 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListOrdersReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Orders        []*Order               `protobuf:"bytes,1,rep,name=orders,proto3" json:"orders,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListOrdersReply) Reset() {
	*x = ListOrdersReply{}
	mi := &file_store_v1_store_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListOrdersReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListOrdersReply) ProtoMessage() {}

func (x *ListOrdersReply) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListOrdersReply.ProtoReflect.Descriptor instead.
func (*ListOrdersReply) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{27}
}

func (x *ListOrdersReply) GetOrders() []*Order {
	if x != nil {
		return x.Orders
	}
	return nil
}

type UpdateOrderStatusRequest struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	OrderId string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	// Target status: completed or cancelled.
	Status        string `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateOrderStatusRequest) Reset() {
	*x = UpdateOrderStatusRequest{}
	mi := &file_store_v1_store_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateOrderStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateOrderStatusRequest) ProtoMessage() {}

func (x *UpdateOrderStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateOrderStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateOrderStatusRequest) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{28}
}

func (x *UpdateOrderStatusRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *UpdateOrderStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type UpdateOrderStatusReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateOrderStatusReply) Reset() {
	*x = UpdateOrderStatusReply{}
	mi := &file_store_v1_store_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateOrderStatusReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateOrderStatusReply) ProtoMessage() {}

func (x *UpdateOrderStatusReply) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateOrderStatusReply.ProtoReflect.Descriptor instead.
func (*UpdateOrderStatusReply) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{29}
}

type Banner struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BannerId      string                 `protobuf:"bytes,1,opt,name=banner_id,json=bannerId,proto3" json:"banner_id,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	ImageUrl      string                 `protobuf:"bytes,3,opt,name=image_url,json=imageUrl,proto3" json:"image_url,omitempty"`
	TargetUrl     *string                `protobuf:"bytes,4,opt,name=target_url,json=targetUrl,proto3,oneof" json:"target_url,omitempty"`
	Position      int64                  `protobuf:"varint,5,opt,name=position,proto3" json:"position,omitempty"`
	Active        bool                   `protobuf:"varint,6,opt,name=active,proto3" json:"active,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Banner) Reset() {
	*x = Banner{}
	mi := &file_store_v1_store_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Banner) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Banner) ProtoMessage() {}

func (x *Banner) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Banner.ProtoReflect.Descriptor instead.
func (*Banner) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{30}
}

func (x *Banner) GetBannerId() string {
	if x != nil {
		return x.BannerId
	}
	return ""
}

func (x *Banner) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Banner) GetImageUrl() string {
	if x != nil {
		return x.ImageUrl
	}
	return ""
}

func (x *Banner) GetTargetUrl() string {
	if x != nil && x.TargetUrl != nil {
		return *x.TargetUrl
	}
	return ""
}

func (x *Banner) GetPosition() int64 {
	if x != nil {
		return x.Position
	}
	return 0
}

func (x *Banner) GetActive() bool {
	if x != nil {
		return x.Active
	}
	return false
}

type SaveBannerRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Blank banner_id creates a new banner.
	BannerId      string  `protobuf:"bytes,1,opt,name=banner_id,json=bannerId,proto3" json:"banner_id,omitempty"`
	Title         string  `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	ImageUrl      string  `protobuf:"bytes,3,opt,name=image_url,json=imageUrl,proto3" json:"image_url,omitempty"`
	TargetUrl     *string `protobuf:"bytes,4,opt,name=target_url,json=targetUrl,proto3,oneof" json:"target_url,omitempty"`
	Position      int64   `protobuf:"varint,5,opt,name=position,proto3" json:"position,omitempty"`
	Active        bool    `protobuf:"varint,6,opt,name=active,proto3" json:"active,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveBannerRequest) Reset() {
	*x = SaveBannerRequest{}
	mi := &file_store_v1_store_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveBannerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveBannerRequest) ProtoMessage() {}

func (x *SaveBannerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveBannerRequest.ProtoReflect.Descriptor instead.
func (*SaveBannerRequest) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{31}
}

func (x *SaveBannerRequest) GetBannerId() string {
	if x != nil {
		return x.BannerId
	}
	return ""
}

func (x *SaveBannerRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *SaveBannerRequest) GetImageUrl() string {
	if x != nil {
		return x.ImageUrl
	}
	return ""
}

func (x *SaveBannerRequest) GetTargetUrl() string {
	if x != nil && x.TargetUrl != nil {
		return *x.TargetUrl
	}
	return ""
}

func (x *SaveBannerRequest) GetPosition() int64 {
	if x != nil {
		return x.Position
	}
	return 0
}

func (x *SaveBannerRequest) GetActive() bool {
	if x != nil {
		return x.Active
	}
	return false
}

type SaveBannerReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BannerId      string                 `protobuf:"bytes,1,opt,name=banner_id,json=bannerId,proto3" json:"banner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveBannerReply) Reset() {
	*x = SaveBannerReply{}
	mi := &file_store_v1_store_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveBannerReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveBannerReply) ProtoMessage() {}

func (x *SaveBannerReply) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveBannerReply.ProtoReflect.Descriptor instead.
func (*SaveBannerReply) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{32}
}

func (x *SaveBannerReply) GetBannerId() string {
	if x != nil {
		return x.BannerId
	}
	return ""
}

type DeleteBannerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BannerId      string                 `protobuf:"bytes,1,opt,name=banner_id,json=bannerId,proto3" json:"banner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteBannerRequest) Reset() {
	*x = DeleteBannerRequest{}
	mi := &file_store_v1_store_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteBannerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteBannerRequest) ProtoMessage() {}

func (x *DeleteBannerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteBannerRequest.ProtoReflect.Descriptor instead.
func (*DeleteBannerRequest) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{33}
}

func (x *DeleteBannerRequest) GetBannerId() string {
	if x != nil {
		return x.BannerId
	}
	return ""
}

type DeleteBannerReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteBannerReply) Reset() {
	*x = DeleteBannerReply{}
	mi := &file_store_v1_store_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteBannerReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteBannerReply) ProtoMessage() {}

func (x *DeleteBannerReply) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteBannerReply.ProtoReflect.Descriptor instead.
func (*DeleteBannerReply) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{34}
}

type ListBannersRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Include inactive banners (admin listings).
	IncludeInactive bool `protobuf:"varint,1,opt,name=include_inactive,json=includeInactive,proto3" json:"include_inactive,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ListBannersRequest) Reset() {
	*x = ListBannersRequest{}
	mi := &file_store_v1_store_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBannersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBannersRequest) ProtoMessage() {}

func (x *ListBannersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBannersRequest.ProtoReflect.Descriptor instead.
func (*ListBannersRequest) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{35}
}

func (x *ListBannersRequest) GetIncludeInactive() bool {
	if x != nil {
		return x.IncludeInactive
	}
	return false
}

type ListBannersReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Banners       []*Banner              `protobuf:"bytes,1,rep,name=banners,proto3" json:"banners,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBannersReply) Reset() {
	*x = ListBannersReply{}
	mi := &file_store_v1_store_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBannersReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBannersReply) ProtoMessage() {}

func (x *ListBannersReply) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBannersReply.ProtoReflect.Descriptor instead.
func (*ListBannersReply) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{36}
}

func (x *ListBannersReply) GetBanners() []*Banner {
	if x != nil {
		return x.Banners
	}
	return nil
}

var File_store_v1_store_proto protoreflect.FileDescriptor

const file_store_v1_store_proto_rawDesc = "" +
	"\n" +
	"\x14store/v1/store.proto\x12\bstore.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\xe7\x03\n" +
	"\aProduct\x12\x1d\n" +
	"\n" +
	"product_id\x18\x01 \x01(\tR\tproductId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x12\n" +
	"\x04slug\x18\x03 \x01(\tR\x04slug\x12\x1a\n" +
	"\bcategory\x18\x04 \x01(\tR\bcategory\x12\x14\n" +
	"\x05price\x18\x05 \x01(\x03R\x05price\x12'\n" +
	"\rprice_3_items\x18\x06 \x01(\x03H\x00R\vprice3Items\x88\x01\x01\x12'\n" +
	"\rprice_5_items\x18\a \x01(\x03H\x01R\vprice5Items\x88\x01\x01\x12\x14\n" +
	"\x05stock\x18\b \x01(\x03R\x05stock\x12K\n" +
	"\x11last_price_update\x18\t \x01(\v2\x1a.google.protobuf.TimestampH\x02R\x0flastPriceUpdate\x88\x01\x01\x129\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\v \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAtB\x10\n" +
	"\x0e_price_3_itemsB\x10\n" +
	"\x0e_price_5_itemsB\x14\n" +
	"\x12_last_price_update\"\xe8\x01\n" +
	"\x14CreateProductRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12\x14\n" +
	"\x05price\x18\x03 \x01(\x03R\x05price\x12'\n" +
	"\rprice_3_items\x18\x04 \x01(\x03H\x00R\vprice3Items\x88\x01\x01\x12'\n" +
	"\rprice_5_items\x18\x05 \x01(\x03H\x01R\vprice5Items\x88\x01\x01\x12\x14\n" +
	"\x05stock\x18\x06 \x01(\x03R\x05stockB\x10\n" +
	"\x0e_price_3_itemsB\x10\n" +
	"\x0e_price_5_items\"3\n" +
	"\x12CreateProductReply\x12\x1d\n" +
	"\n" +
	"product_id\x18\x01 \x01(\tR\tproductId\"\xed\x02\n" +
	"\x14UpdateProductRequest\x12\x1d\n" +
	"\n" +
	"product_id\x18\x01 \x01(\tR\tproductId\x12\x17\n" +
	"\x04name\x18\x02 \x01(\tH\x00R\x04name\x88\x01\x01\x12\x1f\n" +
	"\bcategory\x18\x03 \x01(\tH\x01R\bcategory\x88\x01\x01\x12\x19\n" +
	"\x05price\x18\x04 \x01(\x03H\x02R\x05price\x88\x01\x01\x12'\n" +
	"\rprice_3_items\x18\x05 \x01(\x03H\x03R\vprice3Items\x88\x01\x01\x12'\n" +
	"\rprice_5_items\x18\x06 \x01(\x03H\x04R\vprice5Items\x88\x01\x01\x12\x19\n" +
	"\x05stock\x18\a \x01(\x03H\x05R\x05stock\x88\x01\x01\x12&\n" +
	"\x0fset_tier_prices\x18\b \x01(\bR\rsetTierPricesB\a\n" +
	"\x05_nameB\v\n" +
	"\t_categoryB\b\n" +
	"\x06_priceB\x10\n" +
	"\x0e_price_3_itemsB\x10\n" +
	"\x0e_price_5_itemsB\b\n" +
	"\x06_stock\"\x14\n" +
	"\x12UpdateProductReply\"9\n" +
	"\x17BulkUpdatePricesRequest\x12\x1e\n" +
	"\n" +
	"percentage\x18\x01 \x01(\x01R\n" +
	"percentage\"B\n" +
	"\x15BulkUpdatePricesReply\x12)\n" +
	"\x10products_updated\x18\x01 \x01(\x03R\x0fproductsUpdated\"Q\n" +
	"\x11GetProductRequest\x12\x1f\n" +
	"\n" +
	"product_id\x18\x01 \x01(\tH\x00R\tproductId\x12\x14\n" +
	"\x04slug\x18\x02 \x01(\tH\x00R\x04slugB\x05\n" +
	"\x03key\">\n" +
	"\x0fGetProductReply\x12+\n" +
	"\aproduct\x18\x01 \x01(\v2\x11.store.v1.ProductR\aproduct\"\x87\x01\n" +
	"\x13ListProductsRequest\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12\x1f\n" +
	"\vname_prefix\x18\x02 \x01(\tR\n" +
	"namePrefix\x12\x1b\n" +
	"\tpage_size\x18\x03 \x01(\x03R\bpageSize\x12\x16\n" +
	"\x06offset\x18\x04 \x01(\x03R\x06offset\"c\n" +
	"\x11ListProductsReply\x12-\n" +
	"\bproducts\x18\x01 \x03(\v2\x11.store.v1.ProductR\bproducts\x12\x1f\n" +
	"\vtotal_count\x18\x02 \x01(\x03R\n" +
	"totalCount\"h\n" +
	"\x12AddCartItemRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1d\n" +
	"\n" +
	"product_id\x18\x02 \x01(\tR\tproductId\x12\x1a\n" +
	"\bquantity\x18\x03 \x01(\x03R\bquantity\".\n" +
	"\x10AddCartItemReply\x12\x1a\n" +
	"\bquantity\x18\x01 \x01(\x03R\bquantity\"k\n" +
	"\x15UpdateCartItemRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1d\n" +
	"\n" +
	"product_id\x18\x02 \x01(\tR\tproductId\x12\x1a\n" +
	"\bquantity\x18\x03 \x01(\x03R\bquantity\"\x15\n" +
	"\x13UpdateCartItemReply\"O\n" +
	"\x15RemoveCartItemRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1d\n" +
	"\n" +
	"product_id\x18\x02 \x01(\tR\tproductId\"\x15\n" +
	"\x13RemoveCartItemReply\")\n" +
	"\x0eGetCartRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"\xa8\x01\n" +
	"\bCartLine\x12\x1d\n" +
	"\n" +
	"product_id\x18\x01 \x01(\tR\tproductId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x12\n" +
	"\x04slug\x18\x03 \x01(\tR\x04slug\x12\x1a\n" +
	"\bquantity\x18\x04 \x01(\x03R\bquantity\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x05 \x01(\x03R\tunitPrice\x12\x1a\n" +
	"\bsubtotal\x18\x06 \x01(\x03R\bsubtotal\"N\n" +
	"\fGetCartReply\x12(\n" +
	"\x05lines\x18\x01 \x03(\v2\x12.store.v1.CartLineR\x05lines\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x03R\x05total\"F\n" +
	"\x11PlaceOrderRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x18\n" +
	"\acourier\x18\x02 \x01(\tR\acourier\"p\n" +
	"\x0fPlaceOrderReply\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\x12!\n" +
	"\forder_number\x18\x02 \x01(\tR\vorderNumber\x12\x1f\n" +
	"\vtotal_price\x18\x03 \x01(\x03R\n" +
	"totalPrice\"\x8e\x01\n" +
	"\tOrderItem\x12\x1d\n" +
	"\n" +
	"product_id\x18\x01 \x01(\tR\tproductId\x12\x1a\n" +
	"\bquantity\x18\x02 \x01(\x03R\bquantity\x12*\n" +
	"\x11price_at_purchase\x18\x03 \x01(\x03R\x0fpriceAtPurchase\x12\x1a\n" +
	"\bsubtotal\x18\x04 \x01(\x03R\bsubtotal\"\xbc\x02\n" +
	"\x05Order\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12!\n" +
	"\forder_number\x18\x03 \x01(\tR\vorderNumber\x12\x18\n" +
	"\acourier\x18\x04 \x01(\tR\acourier\x12#\n" +
	"\rshipping_cost\x18\x05 \x01(\x03R\fshippingCost\x12\x1f\n" +
	"\vtotal_price\x18\x06 \x01(\x03R\n" +
	"totalPrice\x12\x16\n" +
	"\x06status\x18\a \x01(\tR\x06status\x12)\n" +
	"\x05items\x18\b \x03(\v2\x13.store.v1.OrderItemR\x05items\x129\n" +
	"\n" +
	"created_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"E\n" +
	"\x0fGetOrderRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x19\n" +
	"\border_id\x18\x02 \x01(\tR\aorderId\"6\n" +
	"\rGetOrderReply\x12%\n" +
	"\x05order\x18\x01 \x01(\v2\x0f.store.v1.OrderR\x05order\"a\n" +
	"\x11ListOrdersRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x03R\bpageSize\x12\x16\n" +
	"\x06offset\x18\x03 \x01(\x03R\x06offset\":\n" +
	"\x0fListOrdersReply\x12'\n" +
	"\x06orders\x18\x01 \x03(\v2\x0f.store.v1.OrderR\x06orders\"M\n" +
	"\x18UpdateOrderStatusRequest\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"\x18\n" +
	"\x16UpdateOrderStatusReply\"\xbf\x01\n" +
	"\x06Banner\x12\x1b\n" +
	"\tbanner_id\x18\x01 \x01(\tR\bbannerId\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x1b\n" +
	"\timage_url\x18\x03 \x01(\tR\bimageUrl\x12\"\n" +
	"\n" +
	"target_url\x18\x04 \x01(\tH\x00R\ttargetUrl\x88\x01\x01\x12\x1a\n" +
	"\bposition\x18\x05 \x01(\x03R\bposition\x12\x16\n" +
	"\x06active\x18\x06 \x01(\bR\x06activeB\r\n" +
	"\v_target_url\"\xca\x01\n" +
	"\x11SaveBannerRequest\x12\x1b\n" +
	"\tbanner_id\x18\x01 \x01(\tR\bbannerId\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x1b\n" +
	"\timage_url\x18\x03 \x01(\tR\bimageUrl\x12\"\n" +
	"\n" +
	"target_url\x18\x04 \x01(\tH\x00R\ttargetUrl\x88\x01\x01\x12\x1a\n" +
	"\bposition\x18\x05 \x01(\x03R\bposition\x12\x16\n" +
	"\x06active\x18\x06 \x01(\bR\x06activeB\r\n" +
	"\v_target_url\".\n" +
	"\x0fSaveBannerReply\x12\x1b\n" +
	"\tbanner_id\x18\x01 \x01(\tR\bbannerId\"2\n" +
	"\x13DeleteBannerRequest\x12\x1b\n" +
	"\tbanner_id\x18\x01 \x01(\tR\bbannerId\"\x13\n" +
	"\x11DeleteBannerReply\"?\n" +
	"\x12ListBannersRequest\x12)\n" +
	"\x10include_inactive\x18\x01 \x01(\bR\x0fincludeInactive\">\n" +
	"\x10ListBannersReply\x12*\n" +
	"\abanners\x18\x01 \x03(\v2\x10.store.v1.BannerR\abanners2\xc2\t\n" +
	"\fStoreService\x12M\n" +
	"\rCreateProduct\x12\x1e.store.v1.CreateProductRequest\x1a\x1c.store.v1.CreateProductReply\x12M\n" +
	"\rUpdateProduct\x12\x1e.store.v1.UpdateProductRequest\x1a\x1c.store.v1.UpdateProductReply\x12V\n" +
	"\x10BulkUpdatePrices\x12!.store.v1.BulkUpdatePricesRequest\x1a\x1f.store.v1.BulkUpdatePricesReply\x12D\n" +
	"\n" +
	"GetProduct\x12\x1b.store.v1.GetProductRequest\x1a\x19.store.v1.GetProductReply\x12J\n" +
	"\fListProducts\x12\x1d.store.v1.ListProductsRequest\x1a\x1b.store.v1.ListProductsReply\x12G\n" +
	"\vAddCartItem\x12\x1c.store.v1.AddCartItemRequest\x1a\x1a.store.v1.AddCartItemReply\x12P\n" +
	"\x0eUpdateCartItem\x12\x1f.store.v1.UpdateCartItemRequest\x1a\x1d.store.v1.UpdateCartItemReply\x12P\n" +
	"\x0eRemoveCartItem\x12\x1f.store.v1.RemoveCartItemRequest\x1a\x1d.store.v1.RemoveCartItemReply\x12;\n" +
	"\aGetCart\x12\x18.store.v1.GetCartRequest\x1a\x16.store.v1.GetCartReply\x12D\n" +
	"\n" +
	"PlaceOrder\x12\x1b.store.v1.PlaceOrderRequest\x1a\x19.store.v1.PlaceOrderReply\x12>\n" +
	"\bGetOrder\x12\x19.store.v1.GetOrderRequest\x1a\x17.store.v1.GetOrderReply\x12D\n" +
	"\n" +
	"ListOrders\x12\x1b.store.v1.ListOrdersRequest\x1a\x19.store.v1.ListOrdersReply\x12Y\n" +
	"\x11UpdateOrderStatus\x12\".store.v1.UpdateOrderStatusRequest\x1a .store.v1.UpdateOrderStatusReply\x12D\n" +
	"\n" +
	"SaveBanner\x12\x1b.store.v1.SaveBannerRequest\x1a\x19.store.v1.SaveBannerReply\x12J\n" +
	"\fDeleteBanner\x12\x1d.store.v1.DeleteBannerRequest\x1a\x1b.store.v1.DeleteBannerReply\x12G\n" +
	"\vListBanners\x12\x1c.store.v1.ListBannersRequest\x1a\x1a.store.v1.ListBannersReplyB?Z=github.com/garasindo/sparepart-service/proto/store/v1;storev1b\x06proto3"

var (
	file_store_v1_store_proto_rawDescOnce sync.Once
	file_store_v1_store_proto_rawDescData []byte
)

func file_store_v1_store_proto_rawDescGZIP() []byte {
	file_store_v1_store_proto_rawDescOnce.Do(func() {
		file_store_v1_store_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_store_v1_store_proto_rawDesc), len(file_store_v1_store_proto_rawDesc)))
	})
	return file_store_v1_store_proto_rawDescData
}

var file_store_v1_store_proto_msgTypes = make([]protoimpl.MessageInfo, 37)
var file_store_v1_store_proto_goTypes = []any{
	(*Product)(nil),                  // 0: store.v1.Product
	(*CreateProductRequest)(nil),     // 1: store.v1.CreateProductRequest
	(*CreateProductReply)(nil),       // 2: store.v1.CreateProductReply
	(*UpdateProductRequest)(nil),     // 3: store.v1.UpdateProductRequest
	(*UpdateProductReply)(nil),       // 4: store.v1.UpdateProductReply
	(*BulkUpdatePricesRequest)(nil),  // 5: store.v1.BulkUpdatePricesRequest
	(*BulkUpdatePricesReply)(nil),    // 6: store.v1.BulkUpdatePricesReply
	(*GetProductRequest)(nil),        // 7: store.v1.GetProductRequest
	(*GetProductReply)(nil),          // 8: store.v1.GetProductReply
	(*ListProductsRequest)(nil),      // 9: store.v1.ListProductsRequest
	(*ListProductsReply)(nil),        // 10: store.v1.ListProductsReply
	(*AddCartItemRequest)(nil),       // 11: store.v1.AddCartItemRequest
	(*AddCartItemReply)(nil),         // 12: store.v1.AddCartItemReply
	(*UpdateCartItemRequest)(nil),    // 13: store.v1.UpdateCartItemRequest
	(*UpdateCartItemReply)(nil),      // 14: store.v1.UpdateCartItemReply
	(*RemoveCartItemRequest)(nil),    // 15: store.v1.RemoveCartItemRequest
	(*RemoveCartItemReply)(nil),      // 16: store.v1.RemoveCartItemReply
	(*GetCartRequest)(nil),           // 17: store.v1.GetCartRequest
	(*CartLine)(nil),                 // 18: store.v1.CartLine
	(*GetCartReply)(nil),             // 19: store.v1.GetCartReply
	(*PlaceOrderRequest)(nil),        // 20: store.v1.PlaceOrderRequest
	(*PlaceOrderReply)(nil),          // 21: store.v1.PlaceOrderReply
	(*OrderItem)(nil),                // 22: store.v1.OrderItem
	(*Order)(nil),                    // 23: store.v1.Order
	(*GetOrderRequest)(nil),          // 24: store.v1.GetOrderRequest
	(*GetOrderReply)(nil),            // 25: store.v1.GetOrderReply
	(*ListOrdersRequest)(nil),        // 26: store.v1.ListOrdersRequest
	(*ListOrdersReply)(nil),          // 27: store.v1.ListOrdersReply
	(*UpdateOrderStatusRequest)(nil), // 28: store.v1.UpdateOrderStatusRequest
	(*UpdateOrderStatusReply)(nil),   // 29: store.v1.UpdateOrderStatusReply
	(*Banner)(nil),                   // 30: store.v1.Banner
	(*SaveBannerRequest)(nil),        // 31: store.v1.SaveBannerRequest
	(*SaveBannerReply)(nil),          // 32: store.v1.SaveBannerReply
	(*DeleteBannerRequest)(nil),      // 33: store.v1.DeleteBannerRequest
	(*DeleteBannerReply)(nil),        // 34: store.v1.DeleteBannerReply
	(*ListBannersRequest)(nil),       // 35: store.v1.ListBannersRequest
	(*ListBannersReply)(nil),         // 36: store.v1.ListBannersReply
	(*timestamppb.Timestamp)(nil),    // 37: google.protobuf.Timestamp
}
var file_store_v1_store_proto_depIdxs = []int32{
	37, // 0: store.v1.Product.last_price_update:type_name -> google.protobuf.Timestamp
	37, // 1: store.v1.Product.created_at:type_name -> google.protobuf.Timestamp
	37, // 2: store.v1.Product.updated_at:type_name -> google.protobuf.Timestamp
	0,  // 3: store.v1.GetProductReply.product:type_name -> store.v1.Product
	0,  // 4: store.v1.ListProductsReply.products:type_name -> store.v1.Product
	18, // 5: store.v1.GetCartReply.lines:type_name -> store.v1.CartLine
	22, // 6: store.v1.Order.items:type_name -> store.v1.OrderItem
	37, // 7: store.v1.Order.created_at:type_name -> google.protobuf.Timestamp
	23, // 8: store.v1.GetOrderReply.order:type_name -> store.v1.Order
	23, // 9: store.v1.ListOrdersReply.orders:type_name -> store.v1.Order
	30, // 10: store.v1.ListBannersReply.banners:type_name -> store.v1.Banner
	1,  // 11: store.v1.StoreService.CreateProduct:input_type -> store.v1.CreateProductRequest
	3,  // 12: store.v1.StoreService.UpdateProduct:input_type -> store.v1.UpdateProductRequest
	5,  // 13: store.v1.StoreService.BulkUpdatePrices:input_type -> store.v1.BulkUpdatePricesRequest
	7,  // 14: store.v1.StoreService.GetProduct:input_type -> store.v1.GetProductRequest
	9,  // 15: store.v1.StoreService.ListProducts:input_type -> store.v1.ListProductsRequest
	11, // 16: store.v1.StoreService.AddCartItem:input_type -> store.v1.AddCartItemRequest
	13, // 17: store.v1.StoreService.UpdateCartItem:input_type -> store.v1.UpdateCartItemRequest
	15, // 18: store.v1.StoreService.RemoveCartItem:input_type -> store.v1.RemoveCartItemRequest
	17, // 19: store.v1.StoreService.GetCart:input_type -> store.v1.GetCartRequest
	20, // 20: store.v1.StoreService.PlaceOrder:input_type -> store.v1.PlaceOrderRequest
	24, // 21: store.v1.StoreService.GetOrder:input_type -> store.v1.GetOrderRequest
	26, // 22: store.v1.StoreService.ListOrders:input_type -> store.v1.ListOrdersRequest
	28, // 23: store.v1.StoreService.UpdateOrderStatus:input_type -> store.v1.UpdateOrderStatusRequest
	31, // 24: store.v1.StoreService.SaveBanner:input_type -> store.v1.SaveBannerRequest
	33, // 25: store.v1.StoreService.DeleteBanner:input_type -> store.v1.DeleteBannerRequest
	35, // 26: store.v1.StoreService.ListBanners:input_type -> store.v1.ListBannersRequest
	2,  // 27: store.v1.StoreService.CreateProduct:output_type -> store.v1.CreateProductReply
	4,  // 28: store.v1.StoreService.UpdateProduct:output_type -> store.v1.UpdateProductReply
	6,  // 29: store.v1.StoreService.BulkUpdatePrices:output_type -> store.v1.BulkUpdatePricesReply
	8,  // 30: store.v1.StoreService.GetProduct:output_type -> store.v1.GetProductReply
	10, // 31: store.v1.StoreService.ListProducts:output_type -> store.v1.ListProductsReply
	12, // 32: store.v1.StoreService.AddCartItem:output_type -> store.v1.AddCartItemReply
	14, // 33: store.v1.StoreService.UpdateCartItem:output_type -> store.v1.UpdateCartItemReply
	16, // 34: store.v1.StoreService.RemoveCartItem:output_type -> store.v1.RemoveCartItemReply
	19, // 35: store.v1.StoreService.GetCart:output_type -> store.v1.GetCartReply
	21, // 36: store.v1.StoreService.PlaceOrder:output_type -> store.v1.PlaceOrderReply
	25, // 37: store.v1.StoreService.GetOrder:output_type -> store.v1.GetOrderReply
	27, // 38: store.v1.StoreService.ListOrders:output_type -> store.v1.ListOrdersReply
	29, // 39: store.v1.StoreService.UpdateOrderStatus:output_type -> store.v1.UpdateOrderStatusReply
	32, // 40: store.v1.StoreService.SaveBanner:output_type -> store.v1.SaveBannerReply
	34, // 41: store.v1.StoreService.DeleteBanner:output_type -> store.v1.DeleteBannerReply
	36, // 42: store.v1.StoreService.ListBanners:output_type -> store.v1.ListBannersReply
	27, // [27:43] is the sub-list for method output_type
	11, // [11:27] is the sub-list for method input_type
	11, // [11:11] is the sub-list for extension type_name
	11, // [11:11] is the sub-list for extension extendee
	0,  // [0:11] is the sub-list for field type_name
}

func init() { file_store_v1_store_proto_init() }
func file_store_v1_store_proto_init() {
	if File_store_v1_store_proto != nil {
		return
	}
	file_store_v1_store_proto_msgTypes[0].OneofWrappers = []any{}
	file_store_v1_store_proto_msgTypes[1].OneofWrappers = []any{}
	file_store_v1_store_proto_msgTypes[3].OneofWrappers = []any{}
	file_store_v1_store_proto_msgTypes[7].OneofWrappers = []any{
		(*GetProductRequest_ProductId)(nil),
		(*GetProductRequest_Slug)(nil),
	}
	file_store_v1_store_proto_msgTypes[30].OneofWrappers = []any{}
	file_store_v1_store_proto_msgTypes[31].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_store_v1_store_proto_rawDesc), len(file_store_v1_store_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   37,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_store_v1_store_proto_goTypes,
		DependencyIndexes: file_store_v1_store_proto_depIdxs,
		MessageInfos:      file_store_v1_store_proto_msgTypes,
	}.Build()
	File_store_v1_store_proto = out.File
	file_store_v1_store_proto_goTypes = nil
	file_store_v1_store_proto_depIdxs = nil
}
